package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/database"
	"gorm.io/gorm"
)

// sortableColumns guards user-supplied sort fields against injection
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"amount":     true,
	"balance":    true,
	"type":       true,
	"status":     true,
	"email":      true,
}

// GormRepository provides type-safe persistence for any entity. When the
// context carries an open transactional session all statements join it,
// otherwise they run against the shared pool.
type GormRepository[T any] struct {
	db         *gorm.DB
	classifier *database.ErrorClassifier
}

// compile-time check against the domain port
var _ persistence.Repository[struct{}] = (*GormRepository[struct{}])(nil)

// NewGormRepository creates a repository for the given entity type
func NewGormRepository[T any](db *gorm.DB, classifier *database.ErrorClassifier) *GormRepository[T] {
	return &GormRepository[T]{db: db, classifier: classifier}
}

// conn returns the session for this call, preferring an open transaction
func (r *GormRepository[T]) conn(ctx context.Context) *gorm.DB {
	if tx, ok := database.SessionFromContext(ctx); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// wrap translates store errors into domain sentinels. The original error
// stays in the chain so the transient classifier can still inspect it.
func (r *GormRepository[T]) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}
	if r.classifier != nil && r.classifier.IsDuplicateKey(err) {
		return fmt.Errorf("%s: %w: %w", op, errs.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Create saves a new entity
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.wrap("create", r.conn(ctx).Create(entity).Error)
}

// CreateMany saves a batch of entities in one statement
func (r *GormRepository[T]) CreateMany(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.wrap("create many", r.conn(ctx).Create(entities).Error)
}

// GetByID retrieves an entity by primary key
func (r *GormRepository[T]) GetByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	var entity T
	query := r.conn(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	if err := query.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, r.wrap("get by id", err)
	}
	return &entity, nil
}

// GetOne retrieves a single entity matching the filter
func (r *GormRepository[T]) GetOne(ctx context.Context, filter persistence.Filter) (*T, error) {
	var entity T
	if err := r.conn(ctx).Where(map[string]any(filter)).First(&entity).Error; err != nil {
		return nil, r.wrap("get one", err)
	}
	return &entity, nil
}

// List retrieves entities matching the filter with paging and sorting
func (r *GormRepository[T]) List(ctx context.Context, filter persistence.Filter, opts persistence.ListOptions) ([]*T, error) {
	var entities []*T

	query := r.conn(ctx).Where(map[string]any(filter))
	query = applyDateRange(query, opts)

	if opts.SortBy != "" && sortableColumns[opts.SortBy] {
		direction := "ASC"
		if opts.SortOrder == persistence.SortDesc {
			direction = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", opts.SortBy, direction))
	} else {
		// Unknown or absent sort columns fall back to newest-first so
		// paginated pages stay stable across requests.
		query = query.Order("created_at DESC")
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	for _, preload := range opts.Preloads {
		query = query.Preload(preload)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, r.wrap("list", err)
	}
	return entities, nil
}

// Update persists all fields of an existing entity
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.wrap("update", r.conn(ctx).Save(entity).Error)
}

// UpdateFields updates the given columns on all rows matching the filter
func (r *GormRepository[T]) UpdateFields(ctx context.Context, filter persistence.Filter, fields map[string]any) error {
	var entity T
	result := r.conn(ctx).Model(&entity).Where(map[string]any(filter)).Updates(fields)
	if result.Error != nil {
		return r.wrap("update fields", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update fields: %w", errs.ErrNotFound)
	}
	return nil
}

// Delete removes all rows matching the filter
func (r *GormRepository[T]) Delete(ctx context.Context, filter persistence.Filter) error {
	var entity T
	return r.wrap("delete", r.conn(ctx).Where(map[string]any(filter)).Delete(&entity).Error)
}

// Count returns the number of rows matching the filter and date range
func (r *GormRepository[T]) Count(ctx context.Context, filter persistence.Filter, opts persistence.ListOptions) (int64, error) {
	var entity T
	var count int64
	query := applyDateRange(r.conn(ctx).Model(&entity).Where(map[string]any(filter)), opts)
	if err := query.Count(&count).Error; err != nil {
		return 0, r.wrap("count", err)
	}
	return count, nil
}

func applyDateRange(query *gorm.DB, opts persistence.ListOptions) *gorm.DB {
	if opts.From != nil {
		query = query.Where("created_at >= ?", *opts.From)
	}
	if opts.To != nil {
		query = query.Where("created_at <= ?", *opts.To)
	}
	return query
}
