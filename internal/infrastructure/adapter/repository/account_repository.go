package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(
		accountModel.AccountID,
		accountModel.AccountName,
		accountModel.AccountType,
		entity.CentsToString(accountModel.Balance),
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to build account entity", map[string]any{
			"account_id": accountModel.AccountID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to build account entity: %s", errs.ErrInternalServer, err.Error())
	}

	account.SetBalance(accountModel.Balance)
	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt
	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
		})
		return errs.NewAccountNotFoundError(accountID)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by its identifier
func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, "account_id = ?", accountID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, accountID)
	}

	return r.modelToEntity(&accountModel)
}

// GetByIDForUpdate retrieves an account holding an exclusive row lock.
// Only meaningful inside a transaction.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, accountID string) (*entity.Account, error) {
	r.logger.Debug("Locking account row", map[string]any{
		"account_id": accountID,
	})

	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, "account_id = ?", accountID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, accountID)
	}

	return r.modelToEntity(&accountModel)
}

// List returns all accounts ordered by account ID
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).Order("account_id ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, "")
	}

	return r.modelsToEntities(accountModels)
}

// ListByType returns all accounts of the given type ordered by account ID
func (r *AccountRepository) ListByType(ctx context.Context, accountType entity.AccountType) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).
		Where("account_type = ?", string(accountType)).
		Order("account_id ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts by type", result.Error, "")
	}

	return r.modelsToEntities(accountModels)
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		AccountID:   account.ID,
		AccountName: account.Name,
		AccountType: string(account.Type),
		Balance:     account.Balance(),
		Currency:    account.Currency,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"account_id":   account.ID,
		"account_type": string(account.Type),
		"balance":      account.GetBalance(),
	})
	return nil
}

// UpdateBalance writes the account's current balance and updated_at
func (r *AccountRepository) UpdateBalance(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("account_id = ?", account.ID).
		Updates(map[string]interface{}{
			"balance":    account.Balance(),
			"updated_at": account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account balance", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Account vanished during balance update", map[string]any{
			"account_id": account.ID,
		})
		return errs.NewAccountNotFoundError(account.ID)
	}

	r.logger.Debug("Account balance updated", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})
	return nil
}

func (r *AccountRepository) modelsToEntities(accountModels []model.Account) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		account, err := r.modelToEntity(&accountModels[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
