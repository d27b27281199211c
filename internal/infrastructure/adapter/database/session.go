package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const sessionKey contextKey = "db_session"

// SessionFromContext returns the transactional session carried by ctx, if
// any. Repositories call this so that every statement issued inside a unit
// of work automatically joins the open transaction.
func SessionFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(sessionKey).(*gorm.DB)
	return tx, ok && tx != nil
}

// UnitOfWork acquires and releases transactional sessions. The session is
// threaded through the context so repositories stay session-agnostic.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{db: db, logger: logger}
}

// Begin starts a new database transaction and stores it in the returned
// context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, sessionKey, tx), nil
}

// Commit commits the transaction carried by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := SessionFromContext(ctx)
	if !ok {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction carried by ctx
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := SessionFromContext(ctx)
	if !ok {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
