package persistence

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// PaymentRepository defines data access operations for payments
type PaymentRepository interface {
	// Create persists a new payment.
	// Returns ErrDuplicateTransaction when the transaction ID already exists.
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByTransactionID retrieves a payment with debtor/creditor names
	// resolved. Returns ErrPaymentNotFound when absent.
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)

	// GetByTransactionIDForUpdate retrieves a payment and acquires an
	// exclusive row lock on it for the remainder of the transaction.
	GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*entity.Payment, error)

	// UpdateStatus atomically moves the payment from expectedStatus to the
	// payment's current Status, writing error_message, updated_at and
	// completed_at. The write is conditional on transaction_status still
	// being expectedStatus; a stale transition affects zero rows and
	// returns ErrInvalidTransition (ErrPaymentNotFound when the payment
	// does not exist at all).
	UpdateStatus(ctx context.Context, payment *entity.Payment, expectedStatus entity.PaymentStatus) error

	// List returns one page of payments, newest first, optionally filtered
	// by status, together with the total count of the filtered set.
	List(ctx context.Context, offset, limit int, status *entity.PaymentStatus) ([]*entity.Payment, int64, error)
}
