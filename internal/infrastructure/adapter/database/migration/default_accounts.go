package migration

import (
	"context"
	"errors"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
)

// seedAccount describes an account created on first startup
type seedAccount struct {
	ID      string
	Name    string
	Type    string
	Balance string
}

// Default demo accounts for a fresh database
var defaultAccounts = []seedAccount{
	{ID: "ACC001", Name: "Main Operating Account", Type: string(entity.AccountTypeDebtor), Balance: "100000.00"},
	{ID: "ACC002", Name: "Payroll Account", Type: string(entity.AccountTypeDebtor), Balance: "50000.00"},
	{ID: "ACC003", Name: "Marketing Budget", Type: string(entity.AccountTypeDebtor), Balance: "25000.00"},
	{ID: "SUP001", Name: "Office Supplies Inc.", Type: string(entity.AccountTypeCreditor), Balance: "0.00"},
	{ID: "SUP002", Name: "Tech Solutions Ltd.", Type: string(entity.AccountTypeCreditor), Balance: "0.00"},
	{ID: "SUP003", Name: "Consulting Partners", Type: string(entity.AccountTypeCreditor), Balance: "0.00"},
	{ID: "SUP004", Name: "Cloud Services Provider", Type: string(entity.AccountTypeCreditor), Balance: "0.00"},
}

// CreateDefaultAccounts creates the default accounts if they don't exist yet
func CreateDefaultAccounts(ctx context.Context, uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	repo := uow.GetAccountRepository(ctx)

	for _, seed := range defaultAccounts {
		_, err := repo.GetByID(ctx, seed.ID)
		if err == nil {
			continue
		}

		var notFound *errs.AccountNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}

		account, err := entity.NewAccount(seed.ID, seed.Name, seed.Type, seed.Balance, timeProvider)
		if err != nil {
			return err
		}

		if err := repo.Create(ctx, account); err != nil {
			return err
		}

		logger.Info("Created default account", map[string]any{
			"account_id":   seed.ID,
			"account_name": seed.Name,
			"account_type": seed.Type,
			"balance":      seed.Balance,
		})
	}

	return nil
}
