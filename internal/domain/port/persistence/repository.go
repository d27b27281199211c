package persistence

import (
	"context"
	"time"
)

// Filter is an equality filter: column name to expected value. Columns use
// the store's naming (snake_case).
type Filter map[string]any

// SortOrder constrains list ordering to the two supported directions
type SortOrder string

// Sort orders
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListOptions carries pagination, ordering and date-range bounds for List
// and Count. The date range applies to the record's creation timestamp;
// Count ignores the paging and ordering fields.
type ListOptions struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder SortOrder
	From      *time.Time
	To        *time.Time
	Preloads  []string
}

// Repository provides per-entity-type access to the relational store.
//
// Every method resolves its execution scope from the context: when a
// transactional session was opened by the unit of work the statement joins
// it, otherwise the store auto-manages a single-statement scope. Store
// errors are wrapped with the entity type and operation name; a missing
// record surfaces as ErrNotFound.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	CreateMany(ctx context.Context, records []*T) error
	GetByID(ctx context.Context, id string, preloads ...string) (*T, error)
	GetOne(ctx context.Context, filter Filter) (*T, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]*T, error)
	Update(ctx context.Context, record *T) error
	UpdateFields(ctx context.Context, filter Filter, values map[string]any) error
	Delete(ctx context.Context, filter Filter) error
	Count(ctx context.Context, filter Filter, opts ListOptions) (int64, error)
}
