package persistence

import (
	"context"
)

// UnitOfWork coordinates transactional work across the account, payment and
// payment log repositories so that balance mutations, status changes and
// audit entries commit or roll back together.
//
// Begin on a context that already carries a transaction opens a savepoint
// instead, so composite operations (fund transfer + status transition) can
// nest inside an outer transaction.
type UnitOfWork interface {
	// Begin starts a new transaction (or savepoint) and returns a context
	// carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction (or releases the savepoint) in the
	// given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction (or to the savepoint) in the
	// given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the
	// context's transaction, or to the base connection outside one
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetPaymentRepository returns a payment repository bound to the
	// current transaction
	GetPaymentRepository(ctx context.Context) PaymentRepository

	// GetPaymentLogRepository returns a payment log repository bound to
	// the current transaction
	GetPaymentLogRepository(ctx context.Context) PaymentLogRepository
}
