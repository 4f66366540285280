package persistence

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// PaymentLogRepository defines data access operations for the append-only
// payment audit log
type PaymentLogRepository interface {
	// Append persists one transition record. Log rows are never updated
	// or deleted.
	Append(ctx context.Context, log *entity.PaymentLog) error

	// ListByTransactionID returns all log entries for a payment, ordered
	// by creation time ascending.
	ListByTransactionID(ctx context.Context, transactionID string) ([]entity.PaymentLog, error)
}
