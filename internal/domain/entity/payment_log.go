package entity

import (
	"time"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// PaymentLog is one append-only audit record of a status transition.
// OldStatus is nil only for the first entry of a payment (the creation
// entry, nil -> pending). Entries are never updated or deleted.
type PaymentLog struct {
	LogID         uint64 // System-assigned, monotonic
	TransactionID string // Owning payment
	OldStatus     *PaymentStatus
	NewStatus     PaymentStatus
	ErrorMessage  string // Set when transitioning to failed
	CreatedAt     time.Time
}

// NewPaymentLog creates the audit record for one transition.
// Pass nil oldStatus for the creation entry.
func NewPaymentLog(
	transactionID string,
	oldStatus *PaymentStatus,
	newStatus PaymentStatus,
	errorMessage string,
	timeProvider coreport.TimeProvider,
) *PaymentLog {
	return &PaymentLog{
		TransactionID: transactionID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		ErrorMessage:  errorMessage,
		CreatedAt:     timeProvider.Now(),
	}
}

// IsInitial reports whether this is the creation entry
func (l *PaymentLog) IsInitial() bool {
	return l.OldStatus == nil
}
