package ledger

import (
	"context"
	"errors"
	"sort"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
)

// Ledger owns the account balance invariants. All balance mutations in the
// system funnel through Transfer, which runs against the transaction
// carried in the caller's context so the balance change commits or rolls
// back together with the payment rows written around it.
type Ledger struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new account ledger
func NewLedger(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAccount returns the account or ErrAccountNotFound
func (l *Ledger) GetAccount(ctx context.Context, accountID string) (*entity.Account, error) {
	return l.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
}

// GetBalance returns an account's balance as a 2-decimal string
func (l *Ledger) GetBalance(ctx context.Context, accountID string) (string, error) {
	account, err := l.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	return account.GetBalance(), nil
}

// HasSufficientBalance reports whether the account exists and covers the
// amount. A missing account yields false, not an error.
func (l *Ledger) HasSufficientBalance(ctx context.Context, accountID string, amountInCents int64) (bool, error) {
	account, err := l.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return account.CanCover(amountInCents), nil
}

// ListAccounts returns all accounts
func (l *Ledger) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return l.uow.GetAccountRepository(ctx).List(ctx)
}

// ListAccountsByType returns all accounts of the given type
func (l *Ledger) ListAccountsByType(ctx context.Context, accountType entity.AccountType) ([]*entity.Account, error) {
	return l.uow.GetAccountRepository(ctx).ListByType(ctx, accountType)
}

// Transfer atomically moves amountInCents from the debtor to the creditor
// inside the transaction carried by ctx. Both account rows are locked
// before either balance changes, in deterministic ID order so two
// transfers touching the same pair cannot deadlock. The debtor balance is
// re-checked under the lock: balances can drift between an earlier
// sufficiency check and execution when payments run concurrently.
func (l *Ledger) Transfer(ctx context.Context, debtorID, creditorID string, amountInCents int64) error {
	if debtorID == creditorID {
		return errs.ErrSameAccount
	}
	if amountInCents <= 0 {
		return errs.ErrInvalidAmount
	}

	accountRepo := l.uow.GetAccountRepository(ctx)

	lockOrder := []string{debtorID, creditorID}
	sort.Strings(lockOrder)

	locked := make(map[string]*entity.Account, 2)
	for _, id := range lockOrder {
		account, err := accountRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		locked[id] = account
	}

	debtor := locked[debtorID]
	creditor := locked[creditorID]

	if err := debtor.Debit(amountInCents, l.timeProvider); err != nil {
		l.logger.Warn("Transfer rejected, debtor balance insufficient", map[string]any{
			"debtor_id":   debtorID,
			"creditor_id": creditorID,
			"available":   debtor.GetBalance(),
			"required":    entity.CentsToString(amountInCents),
		})
		return errs.NewInsufficientBalanceError(debtorID, debtor.GetBalance(), entity.CentsToString(amountInCents))
	}
	creditor.Credit(amountInCents, l.timeProvider)

	if err := accountRepo.UpdateBalance(ctx, debtor); err != nil {
		return err
	}
	if err := accountRepo.UpdateBalance(ctx, creditor); err != nil {
		return err
	}

	l.logger.Info("Funds transferred", map[string]any{
		"debtor_id":        debtorID,
		"creditor_id":      creditorID,
		"amount":           entity.CentsToString(amountInCents),
		"debtor_balance":   debtor.GetBalance(),
		"creditor_balance": creditor.GetBalance(),
	})
	return nil
}
