package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance  = 4001
	CodeInvalidAmount        = 4002
	CodeSameAccount          = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeAmountTooLarge       = 4006
	CodeInvalidStatus        = 4007
	CodeAccountNotFound      = 4040
	CodePaymentNotFound      = 4041
	CodeInvalidTransition    = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when the debtor account cannot cover a payment
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the payment amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the payment amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrAmountTooLarge is returned when the amount exceeds the per-payment limit
	ErrAmountTooLarge = errors.New("amount exceeds maximum limit")

	// ErrSameAccount is returned when debtor and creditor are the same account
	ErrSameAccount = errors.New("debtor and creditor cannot be the same account")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrPaymentNotFound is returned when the requested payment doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidTransition is returned when a status transition is not in the legal graph
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when a status value is not one of the known statuses
	ErrInvalidStatus = errors.New("invalid payment status")

	// ErrDuplicateTransaction is returned when a payment with the same transaction ID already exists
	ErrDuplicateTransaction = errors.New("payment with this transaction ID already exists")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountTooLarge):
		return CodeAmountTooLarge
	case errors.Is(err, ErrSameAccount):
		return CodeSameAccount
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// ErrorCodeString returns the symbolic error code used in API responses
func ErrorCodeString(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrAmountTooLarge):
		return "AMOUNT_TOO_LARGE"
	case errors.Is(err, ErrSameAccount):
		return "SAME_ACCOUNT"
	case errors.Is(err, ErrDuplicateTransaction):
		return "DUPLICATE_TRANSACTION"
	case errors.Is(err, ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	case errors.Is(err, ErrPaymentNotFound):
		return "PAYMENT_NOT_FOUND"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	default:
		return "INTERNAL_ERROR"
	}
}

// AccountNotFoundError names the missing account
type AccountNotFoundError struct {
	AccountID string
}

// Error implements the error interface
func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account '%s' not found", e.AccountID)
}

// Is checks if the target error is an ErrAccountNotFound
func (e *AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}

// LogFields returns a map of fields for structured logging
func (e *AccountNotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "account_not_found",
		"account_id": e.AccountID,
		"error_code": CodeAccountNotFound,
	}
}

// NewAccountNotFoundError creates a new account not found error
func NewAccountNotFoundError(accountID string) error {
	return &AccountNotFoundError{AccountID: accountID}
}

// PaymentNotFoundError names the missing payment
type PaymentNotFoundError struct {
	TransactionID string
}

// Error implements the error interface
func (e *PaymentNotFoundError) Error() string {
	return fmt.Sprintf("payment '%s' not found", e.TransactionID)
}

// Is checks if the target error is an ErrPaymentNotFound
func (e *PaymentNotFoundError) Is(target error) bool {
	return target == ErrPaymentNotFound
}

// LogFields returns a map of fields for structured logging
func (e *PaymentNotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "payment_not_found",
		"transaction_id": e.TransactionID,
		"error_code":     CodePaymentNotFound,
	}
}

// NewPaymentNotFoundError creates a new payment not found error
func NewPaymentNotFoundError(transactionID string) error {
	return &PaymentNotFoundError{TransactionID: transactionID}
}

// InsufficientBalanceError provides the available and required amounts
// as 2-decimal strings
type InsufficientBalanceError struct {
	AccountID string
	Available string
	Required  string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in account '%s': required %s, available %s",
		e.AccountID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "insufficient_balance",
		"account_id":        e.AccountID,
		"available_balance": e.Available,
		"required_amount":   e.Required,
		"error_code":        CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID, available, required string) error {
	return &InsufficientBalanceError{
		AccountID: accountID,
		Available: available,
		Required:  required,
	}
}

// InvalidTransitionError carries the rejected transition
type InvalidTransitionError struct {
	TransactionID string
	From          string
	To            string
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition for payment '%s': '%s' -> '%s'",
		e.TransactionID, e.From, e.To)
}

// Is checks if the target error is an ErrInvalidTransition
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "invalid_transition",
		"transaction_id": e.TransactionID,
		"old_status":     e.From,
		"new_status":     e.To,
		"error_code":     CodeInvalidTransition,
	}
}

// NewInvalidTransitionError creates a new invalid transition error
func NewInvalidTransitionError(transactionID, from, to string) error {
	return &InvalidTransitionError{
		TransactionID: transactionID,
		From:          from,
		To:            to,
	}
}

// PaymentError represents an error raised while creating or advancing a payment
type PaymentError struct {
	TransactionID string
	DebtorID      string
	CreditorID    string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for ID %s (debtor: %s, creditor: %s, amount: %s): %s - %v",
		e.TransactionID, e.DebtorID, e.CreditorID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "payment_error",
		"transaction_id": e.TransactionID,
		"debtor_id":      e.DebtorID,
		"creditor_id":    e.CreditorID,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(transactionID, debtorID, creditorID, amount, reason string, err error) *PaymentError {
	return &PaymentError{
		TransactionID: transactionID,
		DebtorID:      debtorID,
		CreditorID:    creditorID,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsPaymentNotFoundError checks if the error is a payment not found error
func IsPaymentNotFoundError(err error) bool {
	return errors.Is(err, ErrPaymentNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsValidationError checks if the error is a client-side validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountTooLarge) ||
		errors.Is(err, ErrSameAccount)
}
