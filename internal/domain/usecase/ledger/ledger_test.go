package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	mockCore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
	mockPersistence "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/persistence"
)

func newTestAccount(t *testing.T, id, name, accountType, balance string) *entity.Account {
	t.Helper()

	tp := new(mockCore.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC))

	account, err := entity.NewAccount(id, name, accountType, balance, tp)
	require.NoError(t, err)
	return account
}

func setupLedgerTest() (*Ledger, *mockPersistence.MockUnitOfWork, *mockPersistence.MockAccountRepository, *mockCore.MockTimeProvider) {
	uow := new(mockPersistence.MockUnitOfWork)
	accountRepo := new(mockPersistence.MockAccountRepository)
	timeProvider := new(mockCore.MockTimeProvider)
	logger := new(mockCore.MockLogger)

	uow.On("GetAccountRepository", mock.Anything).Return(accountRepo)
	timeProvider.On("Now").Return(time.Date(2025, 1, 18, 10, 30, 0, 0, time.UTC)).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return NewLedger(uow, timeProvider, logger), uow, accountRepo, timeProvider
}

func TestGetBalance(t *testing.T) {
	t.Run("returns formatted balance", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		account := newTestAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00")
		accountRepo.On("GetByID", mock.Anything, "ACC001").Return(account, nil)

		balance, err := l.GetBalance(context.Background(), "ACC001")

		assert.NoError(t, err)
		assert.Equal(t, "100000.00", balance)
	})

	t.Run("propagates not found", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		accountRepo.On("GetByID", mock.Anything, "ACC999").
			Return(nil, errs.NewAccountNotFoundError("ACC999"))

		_, err := l.GetBalance(context.Background(), "ACC999")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestHasSufficientBalance(t *testing.T) {
	tests := []struct {
		name          string
		balance       string
		amountInCents int64
		expected      bool
	}{
		{"balance exceeds amount", "500.00", 10000, true},
		{"balance equals amount", "100.00", 10000, true},
		{"balance below amount", "99.99", 10000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, accountRepo, _ := setupLedgerTest()
			account := newTestAccount(t, "ACC001", "Main Operating Account", "debtor", tt.balance)
			accountRepo.On("GetByID", mock.Anything, "ACC001").Return(account, nil)

			ok, err := l.HasSufficientBalance(context.Background(), "ACC001", tt.amountInCents)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}

	t.Run("missing account reports false without error", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		accountRepo.On("GetByID", mock.Anything, "ACC999").
			Return(nil, errs.NewAccountNotFoundError("ACC999"))

		ok, err := l.HasSufficientBalance(context.Background(), "ACC999", 100)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTransfer(t *testing.T) {
	t.Run("moves funds between accounts", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		debtor := newTestAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00")
		creditor := newTestAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00")

		accountRepo.On("GetByIDForUpdate", mock.Anything, "ACC001").Return(debtor, nil)
		accountRepo.On("GetByIDForUpdate", mock.Anything, "SUP001").Return(creditor, nil)
		accountRepo.On("UpdateBalance", mock.Anything, debtor).Return(nil)
		accountRepo.On("UpdateBalance", mock.Anything, creditor).Return(nil)

		err := l.Transfer(context.Background(), "ACC001", "SUP001", 150050)

		assert.NoError(t, err)
		assert.Equal(t, "98499.50", debtor.GetBalance())
		assert.Equal(t, "1500.50", creditor.GetBalance())
		accountRepo.AssertExpectations(t)
	})

	t.Run("locks accounts in sorted id order", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		debtor := newTestAccount(t, "ZED001", "Late Alphabet Corp.", "debtor", "100.00")
		creditor := newTestAccount(t, "ACC002", "Receiver", "creditor", "0.00")

		var lockOrder []string
		accountRepo.On("GetByIDForUpdate", mock.Anything, "ZED001").
			Run(func(args mock.Arguments) {
				lockOrder = append(lockOrder, args.String(1))
			}).
			Return(debtor, nil)
		accountRepo.On("GetByIDForUpdate", mock.Anything, "ACC002").
			Run(func(args mock.Arguments) {
				lockOrder = append(lockOrder, args.String(1))
			}).
			Return(creditor, nil)
		accountRepo.On("UpdateBalance", mock.Anything, mock.Anything).Return(nil)

		err := l.Transfer(context.Background(), "ZED001", "ACC002", 5000)

		assert.NoError(t, err)
		assert.Equal(t, []string{"ACC002", "ZED001"}, lockOrder)
	})

	t.Run("rejects insufficient balance under lock", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		debtor := newTestAccount(t, "ACC001", "Main Operating Account", "debtor", "10.00")
		creditor := newTestAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00")

		accountRepo.On("GetByIDForUpdate", mock.Anything, "ACC001").Return(debtor, nil)
		accountRepo.On("GetByIDForUpdate", mock.Anything, "SUP001").Return(creditor, nil)

		err := l.Transfer(context.Background(), "ACC001", "SUP001", 10001)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var insufficientErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, "ACC001", insufficientErr.AccountID)
		assert.Equal(t, "10.00", insufficientErr.Available)
		assert.Equal(t, "100.01", insufficientErr.Required)

		assert.Equal(t, "10.00", debtor.GetBalance())
		assert.Equal(t, "0.00", creditor.GetBalance())
		accountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
	})

	t.Run("rejects same account", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()

		err := l.Transfer(context.Background(), "ACC001", "ACC001", 100)

		assert.ErrorIs(t, err, errs.ErrSameAccount)
		accountRepo.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		l, _, _, _ := setupLedgerTest()

		assert.ErrorIs(t, l.Transfer(context.Background(), "ACC001", "SUP001", 0), errs.ErrInvalidAmount)
		assert.ErrorIs(t, l.Transfer(context.Background(), "ACC001", "SUP001", -100), errs.ErrInvalidAmount)
	})

	t.Run("propagates missing creditor", func(t *testing.T) {
		l, _, accountRepo, _ := setupLedgerTest()
		debtor := newTestAccount(t, "ACC001", "Main Operating Account", "debtor", "100.00")
		accountRepo.On("GetByIDForUpdate", mock.Anything, "ACC001").Return(debtor, nil)
		accountRepo.On("GetByIDForUpdate", mock.Anything, "SUP999").
			Return(nil, errs.NewAccountNotFoundError("SUP999"))

		err := l.Transfer(context.Background(), "ACC001", "SUP999", 100)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
