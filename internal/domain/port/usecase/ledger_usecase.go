package usecase

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// AccountLedger owns the account balance invariants. Reads are available to
// any caller; Transfer is the only balance-mutation path and must run
// inside the caller's transaction.
type AccountLedger interface {
	// GetAccount returns the account or ErrAccountNotFound
	GetAccount(ctx context.Context, accountID string) (*entity.Account, error)

	// GetBalance returns the balance as a 2-decimal string, or
	// ErrAccountNotFound
	GetBalance(ctx context.Context, accountID string) (string, error)

	// HasSufficientBalance reports whether the account exists and its
	// balance covers amountInCents. A missing account is false, not an
	// error.
	HasSufficientBalance(ctx context.Context, accountID string, amountInCents int64) (bool, error)

	// Transfer atomically moves amountInCents from debtor to creditor
	// within the transaction carried by ctx
	Transfer(ctx context.Context, debtorID, creditorID string, amountInCents int64) error

	// ListAccounts returns all accounts
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// ListAccountsByType returns all accounts of one type
	ListAccountsByType(ctx context.Context, accountType entity.AccountType) ([]*entity.Account, error)
}
