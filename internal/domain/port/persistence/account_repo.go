package persistence

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// AccountRepository defines data access operations for ledger accounts
type AccountRepository interface {
	// GetByID retrieves an account by its identifier.
	// Returns ErrAccountNotFound if no such account exists.
	GetByID(ctx context.Context, accountID string) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account and acquires an exclusive row
	// lock on it. Only meaningful inside a transaction; the lock is held
	// until commit or rollback.
	GetByIDForUpdate(ctx context.Context, accountID string) (*entity.Account, error)

	// List returns all accounts, ordered by account ID
	List(ctx context.Context) ([]*entity.Account, error)

	// ListByType returns all accounts of the given type, ordered by account ID
	ListByType(ctx context.Context, accountType entity.AccountType) ([]*entity.Account, error)

	// Create persists a new account
	Create(ctx context.Context, account *entity.Account) error

	// UpdateBalance writes the account's current balance and updated_at
	UpdateBalance(ctx context.Context, account *entity.Account) error
}
