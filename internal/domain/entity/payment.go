package entity

import (
	"time"

	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// PaymentStatus defines possible status values for a payment
type PaymentStatus string

// Payment lifecycle states
const (
	StatusPending    PaymentStatus = "pending"
	StatusProcessing PaymentStatus = "processing"
	StatusCompleted  PaymentStatus = "completed"
	StatusFailed     PaymentStatus = "failed"
)

// DefaultCurrency is the only currency the system moves today
const DefaultCurrency = "USD"

// legalTransitions encodes the status graph:
// pending -> processing -> completed|failed.
// completed and failed are terminal.
var legalTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:    {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusFailed},
	StatusCompleted:  {},
	StatusFailed:     {},
}

// IsValidStatus reports whether the value is one of the known statuses
func IsValidStatus(status string) bool {
	switch PaymentStatus(status) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next is legal
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payment represents a money movement between two ledger accounts
type Payment struct {
	TransactionID     string        // Unique identifier, format TXN_<YYYYMMDD>_<6 alnum>
	DebtorAccountID   string        // Account funds are withdrawn from
	CreditorAccountID string        // Account funds are deposited into
	Amount            string        // Amount as a string with 2 decimal places
	AmountInCents     int64         // Amount in cents for precise calculations
	Currency          string        // ISO 4217 currency code
	Status            PaymentStatus // Current state in the lifecycle
	Description       string        // Optional free-text description
	ErrorMessage      string        // Set only when the payment failed
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time // Set exactly once, when a terminal status is reached

	// Resolved account names, populated by joined reads
	DebtorName   string
	CreditorName string

	// Status history, loaded on demand, ordered by creation time
	Logs []PaymentLog
}

// NewPayment creates a pending payment with basic validation
func NewPayment(
	transactionID string,
	debtorAccountID string,
	creditorAccountID string,
	amount string,
	description string,
	timeProvider coreport.TimeProvider,
) (*Payment, error) {
	if debtorAccountID == creditorAccountID {
		return nil, errs.ErrSameAccount
	}

	amountInCents, err := ValidatePaymentAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Payment{
		TransactionID:     transactionID,
		DebtorAccountID:   debtorAccountID,
		CreditorAccountID: creditorAccountID,
		Amount:            CentsToString(amountInCents),
		AmountInCents:     amountInCents,
		Currency:          DefaultCurrency,
		Status:            StatusPending,
		Description:       description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ApplyTransition moves the payment to newStatus, recording the error
// message and the completion timestamp for terminal statuses. Returns
// InvalidTransitionError if the move is not in the legal graph.
func (p *Payment) ApplyTransition(newStatus PaymentStatus, errorMessage string, timeProvider coreport.TimeProvider) error {
	if !p.Status.CanTransitionTo(newStatus) {
		return errs.NewInvalidTransitionError(p.TransactionID, string(p.Status), string(newStatus))
	}

	now := timeProvider.Now()
	p.Status = newStatus
	p.ErrorMessage = errorMessage
	p.UpdatedAt = now
	if newStatus.IsTerminal() {
		p.CompletedAt = &now
	}
	return nil
}

// IsFinal reports whether the payment has reached a terminal status
func (p *Payment) IsFinal() bool {
	return p.Status.IsTerminal()
}
