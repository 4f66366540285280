package usecase

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// CreatePaymentRequest carries the validated input for creating a payment
type CreatePaymentRequest struct {
	DebtorAccountID   string
	CreditorAccountID string
	Amount            string // 2-decimal string, e.g. "1500.50"
	Description       string
}

// ListPaymentsRequest carries pagination and filtering for payment listings
type ListPaymentsRequest struct {
	Page     int
	PageSize int
	Status   *entity.PaymentStatus
}

// PaymentRecordManager creates and queries payment aggregates and owns the
// transaction-id namespace
type PaymentRecordManager interface {
	// CreatePayment validates the request, persists a pending payment and
	// its initial audit entry, and returns the created payment
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*entity.Payment, error)

	// GetPayment returns the payment with account names resolved; logs are
	// loaded only when includeLogs is set
	GetPayment(ctx context.Context, transactionID string, includeLogs bool) (*entity.Payment, error)

	// ListPayments returns one page of payments, newest first, with the
	// total count of the filtered set
	ListPayments(ctx context.Context, req ListPaymentsRequest) ([]*entity.Payment, int64, error)
}

// PaymentProcessor advances payments through the status state machine.
// The asynchronous processing scheduler drives payments exclusively
// through this interface, exactly as an external gateway callback would.
type PaymentProcessor interface {
	// Advance performs one status transition and appends the matching
	// audit entry, atomically
	Advance(ctx context.Context, transactionID string, newStatus entity.PaymentStatus, errorMessage string) (*entity.Payment, error)

	// Complete transfers the funds and transitions processing -> completed
	// in one transaction
	Complete(ctx context.Context, transactionID string) (*entity.Payment, error)

	// Fail transitions the payment to failed carrying the reason; no
	// balance mutation
	Fail(ctx context.Context, transactionID string, reason string) (*entity.Payment, error)
}

// ProcessingScheduler launches independent background processing for a
// created payment
type ProcessingScheduler interface {
	// Schedule starts one processing unit for the payment and returns
	// immediately
	Schedule(transactionID string)
}
