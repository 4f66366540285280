package repository

import (
	"context"
	"fmt"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentLogRepository implements persistence.PaymentLogRepository using
// GORM. The table is append-only; there are no update or delete paths.
type PaymentLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentLogRepository creates a new PaymentLogRepository instance
func NewPaymentLogRepository(db *gorm.DB, logger coreport.Logger) *PaymentLogRepository {
	return &PaymentLogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append persists one transition record
func (r *PaymentLogRepository) Append(ctx context.Context, log *entity.PaymentLog) error {
	var oldStatus *string
	if log.OldStatus != nil {
		s := string(*log.OldStatus)
		oldStatus = &s
	}

	logModel := model.PaymentLog{
		TransactionID: log.TransactionID,
		OldStatus:     oldStatus,
		NewStatus:     string(log.NewStatus),
		ErrorMessage:  log.ErrorMessage,
		CreatedAt:     log.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&logModel)
	if result.Error != nil {
		r.logger.Error("Failed to append payment log entry", map[string]any{
			"transaction_id": log.TransactionID,
			"new_status":     string(log.NewStatus),
			"error":          result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	log.LogID = logModel.LogID
	return nil
}

// ListByTransactionID returns all log entries for a payment ordered by
// creation time ascending
func (r *PaymentLogRepository) ListByTransactionID(ctx context.Context, transactionID string) ([]entity.PaymentLog, error) {
	var logModels []model.PaymentLog
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC, log_id ASC").
		Find(&logModels)
	if result.Error != nil {
		r.logger.Error("Failed to list payment log entries", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	logs := make([]entity.PaymentLog, 0, len(logModels))
	for _, logModel := range logModels {
		var oldStatus *entity.PaymentStatus
		if logModel.OldStatus != nil {
			s := entity.PaymentStatus(*logModel.OldStatus)
			oldStatus = &s
		}
		logs = append(logs, entity.PaymentLog{
			LogID:         logModel.LogID,
			TransactionID: logModel.TransactionID,
			OldStatus:     oldStatus,
			NewStatus:     entity.PaymentStatus(logModel.NewStatus),
			ErrorMessage:  logModel.ErrorMessage,
			CreatedAt:     logModel.CreatedAt,
		})
	}
	return logs, nil
}
