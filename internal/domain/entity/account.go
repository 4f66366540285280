package entity

import (
	"time"

	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// AccountType distinguishes paying accounts from receiving accounts
type AccountType string

// Account types
const (
	AccountTypeDebtor   AccountType = "debtor"
	AccountTypeCreditor AccountType = "creditor"
)

// IsValidAccountType validates if the account type is allowed
func IsValidAccountType(accountType string) bool {
	return accountType == string(AccountTypeDebtor) || accountType == string(AccountTypeCreditor)
}

// Account represents a ledger account whose balance payments move money
// between. The balance is private and stored in cents; it can only change
// through Debit/Credit, which the ledger calls inside a store transaction.
type Account struct {
	ID        string // Unique account identifier, e.g. ACC001
	Name      string // Display name
	Type      AccountType
	balance   int64  // Balance in cents
	Currency  string // ISO 4217 currency code
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account with the given identity and initial balance
func NewAccount(id, name, accountType, initialBalance string, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == "" {
		return nil, errs.NewAccountNotFoundError(id)
	}
	if !IsValidAccountType(accountType) {
		return nil, errs.ErrConstraintViolation
	}

	balanceInCents, err := ValidateAndConvertAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		ID:        id,
		Name:      name,
		Type:      AccountType(accountType),
		balance:   balanceInCents,
		Currency:  DefaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents
func (a *Account) Balance() int64 {
	return a.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return CentsToString(a.balance)
}

// SetBalance updates the balance directly (for repository hydration)
func (a *Account) SetBalance(balanceInCents int64) {
	a.balance = balanceInCents
}

// CanCover reports whether the account balance covers the given amount
func (a *Account) CanCover(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns ErrInsufficientBalance otherwise; the balance never goes negative.
func (a *Account) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if a.balance < amountInCents {
		return errs.ErrInsufficientBalance
	}
	a.balance -= amountInCents
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds the amount to the balance
func (a *Account) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	a.balance += amountInCents
	a.UpdatedAt = timeProvider.Now()
}
