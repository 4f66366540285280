package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const (
	txKey        contextKey = "tx"
	savepointKey contextKey = "savepoint"
)

// savepointCounter keeps nested savepoint names unique within a connection
var savepointCounter atomic.Uint64

func nextSavepointID() string {
	return strconv.FormatUint(savepointCounter.Add(1), 10)
}

// UnitOfWork implements the unit of work pattern for database transactions.
// Begin on a context already carrying a transaction opens a savepoint on
// it instead, so composite operations can nest: the inner Commit releases
// the savepoint and the outer transaction stays in charge of durability.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      *MetricsCollector
	errorMapper  *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      NewMetricsCollector(logger, timeProvider),
		errorMapper:  NewErrorMapper(),
	}
}

// Begin starts a new database transaction, or a savepoint when the context
// already carries one
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		savepoint := fmt.Sprintf("sp_%s", nextSavepointID())
		u.logger.Debug("Opening savepoint in existing transaction", map[string]any{
			"savepoint": savepoint,
		})
		if err := tx.SavePoint(savepoint).Error; err != nil {
			u.logger.Error("Failed to create savepoint", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to create savepoint: %w", err)
		}
		return context.WithValue(ctx, savepointKey, savepoint), nil
	}

	u.logger.Debug("Beginning database transaction", nil)
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction, or releases the savepoint if this level
// only opened one
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if savepoint, ok := ctx.Value(savepointKey).(string); ok && savepoint != "" {
		u.logger.Debug("Releasing savepoint", map[string]any{"savepoint": savepoint})
		if err := tx.Exec("RELEASE SAVEPOINT " + savepoint).Error; err != nil {
			u.logger.Error("Failed to release savepoint", map[string]any{
				"savepoint": savepoint,
				"error":     err.Error(),
			})
			return fmt.Errorf("failed to release savepoint: %w", err)
		}
		return nil
	}

	u.logger.Debug("Committing database transaction", nil)
	if _, err := u.metrics.MeasureQuery(ctx, "transaction_commit", func() (int64, error) {
		return 0, tx.Commit().Error
	}); err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		// Deferred constraints fire at commit time, so the commit error is
		// where duplicate keys and check violations surface
		return u.errorMapper.MapError(err, "commit")
	}

	return nil
}

// Rollback rolls the transaction back, or back to the savepoint if this
// level only opened one
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if savepoint, ok := ctx.Value(savepointKey).(string); ok && savepoint != "" {
		u.logger.Debug("Rolling back to savepoint", map[string]any{"savepoint": savepoint})
		if err := tx.RollbackTo(savepoint).Error; err != nil {
			u.logger.Error("Failed to roll back to savepoint", map[string]any{
				"savepoint": savepoint,
				"error":     err.Error(),
			})
			return fmt.Errorf("failed to roll back to savepoint: %w", err)
		}
		return nil
	}

	u.logger.Debug("Rolling back database transaction", nil)
	err := tx.Rollback().Error

	// A transaction that was already finished is not worth failing over
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetAccountRepository returns an account repository bound to the current
// transaction, or to the base connection outside one
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetPaymentRepository returns a payment repository in the current transaction
func (u *UnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	return repository.NewPaymentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPaymentLogRepository returns a payment log repository in the current transaction
func (u *UnitOfWork) GetPaymentLogRepository(ctx context.Context) persistence.PaymentLogRepository {
	return repository.NewPaymentLogRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
