package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
	mockCore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
	mockPersistence "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/persistence"
)

type recordManagerFixture struct {
	manager     *RecordManager
	uow         *mockPersistence.MockUnitOfWork
	accountRepo *mockPersistence.MockAccountRepository
	paymentRepo *mockPersistence.MockPaymentRepository
	logRepo     *mockPersistence.MockPaymentLogRepository
	random      *mockCore.MockRandomSource
}

func setupRecordManagerTest() *recordManagerFixture {
	uow := new(mockPersistence.MockUnitOfWork)
	accountRepo := new(mockPersistence.MockAccountRepository)
	paymentRepo := new(mockPersistence.MockPaymentRepository)
	logRepo := new(mockPersistence.MockPaymentLogRepository)
	timeProvider := new(mockCore.MockTimeProvider)
	random := new(mockCore.MockRandomSource)
	logger := new(mockCore.MockLogger)

	uow.On("GetAccountRepository", mock.Anything).Return(accountRepo).Maybe()
	uow.On("GetPaymentRepository", mock.Anything).Return(paymentRepo).Maybe()
	uow.On("GetPaymentLogRepository", mock.Anything).Return(logRepo).Maybe()
	timeProvider.On("Now").Return(time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC)).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return &recordManagerFixture{
		manager:     NewRecordManager(uow, timeProvider, random, logger),
		uow:         uow,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		logRepo:     logRepo,
		random:      random,
	}
}

func (f *recordManagerFixture) stubRandomSuffix(indices ...int) {
	for _, idx := range indices {
		f.random.On("IntN", 36).Return(idx).Once()
	}
}

func testAccount(t *testing.T, id, name, accountType, balance string) *entity.Account {
	t.Helper()

	tp := new(mockCore.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 1, 18, 9, 0, 0, 0, time.UTC))

	account, err := entity.NewAccount(id, name, accountType, balance, tp)
	require.NoError(t, err)
	return account
}

func TestCreatePayment(t *testing.T) {
	validReq := usecase.CreatePaymentRequest{
		DebtorAccountID:   "ACC001",
		CreditorAccountID: "SUP001",
		Amount:            "1500.50",
		Description:       "Office supplies order",
	}

	t.Run("creates pending payment with creation log", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC001").
			Return(testAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00"), nil)
		f.accountRepo.On("GetByID", mock.Anything, "SUP001").
			Return(testAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00"), nil)
		// suffix A3F9K2
		f.stubRandomSuffix(0, 29, 5, 35, 10, 28)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

		var creationLog *entity.PaymentLog
		f.logRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.PaymentLog")).
			Run(func(args mock.Arguments) {
				creationLog = args.Get(1).(*entity.PaymentLog)
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		p, err := f.manager.CreatePayment(context.Background(), validReq)

		require.NoError(t, err)
		assert.Equal(t, "TXN_20250118_A3F9K2", p.TransactionID)
		assert.Equal(t, entity.StatusPending, p.Status)
		assert.Equal(t, "1500.50", p.Amount)
		assert.Equal(t, int64(150050), p.AmountInCents)
		assert.Nil(t, p.CompletedAt)
		assert.Equal(t, "Main Operating Account", p.DebtorName)
		assert.Equal(t, "Office Supplies Inc.", p.CreditorName)

		require.NotNil(t, creationLog)
		assert.True(t, creationLog.IsInitial())
		assert.Equal(t, entity.StatusPending, creationLog.NewStatus)
		assert.Equal(t, p.TransactionID, creationLog.TransactionID)

		f.uow.AssertCalled(t, "Commit", mock.Anything)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("rejects unknown debtor account", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC999").
			Return(nil, errs.NewAccountNotFoundError("ACC999"))

		req := validReq
		req.DebtorAccountID = "ACC999"
		_, err := f.manager.CreatePayment(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		var notFound *errs.AccountNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ACC999", notFound.AccountID)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("rejects unknown creditor account", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC001").
			Return(testAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00"), nil)
		f.accountRepo.On("GetByID", mock.Anything, "SUP001").
			Return(nil, errs.NewAccountNotFoundError("SUP001"))

		_, err := f.manager.CreatePayment(context.Background(), validReq)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("rejects insufficient balance before persisting anything", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC001").
			Return(testAccount(t, "ACC001", "Main Operating Account", "debtor", "1000.00"), nil)
		f.accountRepo.On("GetByID", mock.Anything, "SUP001").
			Return(testAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00"), nil)

		_, err := f.manager.CreatePayment(context.Background(), validReq)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var insufficient *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "ACC001", insufficient.AccountID)
		assert.Equal(t, "1000.00", insufficient.Available)
		assert.Equal(t, "1500.50", insufficient.Required)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects same debtor and creditor", func(t *testing.T) {
		f := setupRecordManagerTest()

		req := validReq
		req.CreditorAccountID = req.DebtorAccountID
		_, err := f.manager.CreatePayment(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrSameAccount)
		f.accountRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed and out-of-range amounts", func(t *testing.T) {
		tests := []struct {
			name     string
			amount   string
			expected error
		}{
			{"three decimal places", "100.123", errs.ErrInvalidAmount},
			{"not a number", "abc", errs.ErrInvalidAmount},
			{"zero", "0.00", errs.ErrNegativeAmount},
			{"negative", "-50.00", errs.ErrNegativeAmount},
			{"above maximum", "1000000.01", errs.ErrAmountTooLarge},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setupRecordManagerTest()

				req := validReq
				req.Amount = tt.amount
				_, err := f.manager.CreatePayment(context.Background(), req)

				assert.ErrorIs(t, err, tt.expected)
				f.uow.AssertNotCalled(t, "Begin", mock.Anything)
			})
		}
	})

	t.Run("rolls back when the audit entry cannot be written", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC001").
			Return(testAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00"), nil)
		f.accountRepo.On("GetByID", mock.Anything, "SUP001").
			Return(testAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00"), nil)
		f.stubRandomSuffix(0, 0, 0, 0, 0, 0)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.paymentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.logRepo.On("Append", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.manager.CreatePayment(context.Background(), validReq)

		assert.Error(t, err)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("surfaces duplicate transaction id", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.accountRepo.On("GetByID", mock.Anything, "ACC001").
			Return(testAccount(t, "ACC001", "Main Operating Account", "debtor", "100000.00"), nil)
		f.accountRepo.On("GetByID", mock.Anything, "SUP001").
			Return(testAccount(t, "SUP001", "Office Supplies Inc.", "creditor", "0.00"), nil)
		f.stubRandomSuffix(0, 0, 0, 0, 0, 0)

		f.uow.On("Begin", mock.Anything).Return(context.Background(), nil)
		f.paymentRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateTransaction)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.manager.CreatePayment(context.Background(), validReq)

		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
		var paymentErr *errs.PaymentError
		require.ErrorAs(t, err, &paymentErr)
		assert.Equal(t, "TXN_20250118_AAAAAA", paymentErr.TransactionID)
		assert.Equal(t, "ACC001", paymentErr.DebtorID)
		assert.Equal(t, "SUP001", paymentErr.CreditorID)
		assert.Equal(t, "1500.50", paymentErr.Amount)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
	})
}

func TestGetPayment(t *testing.T) {
	t.Run("returns payment without logs by default", func(t *testing.T) {
		f := setupRecordManagerTest()
		stored := &entity.Payment{
			TransactionID: "TXN_20250118_A3F9K2",
			Status:        entity.StatusCompleted,
		}
		f.paymentRepo.On("GetByTransactionID", mock.Anything, "TXN_20250118_A3F9K2").Return(stored, nil)

		p, err := f.manager.GetPayment(context.Background(), "TXN_20250118_A3F9K2", false)

		require.NoError(t, err)
		assert.Empty(t, p.Logs)
		f.logRepo.AssertNotCalled(t, "ListByTransactionID", mock.Anything, mock.Anything)
	})

	t.Run("loads status history when requested", func(t *testing.T) {
		f := setupRecordManagerTest()
		stored := &entity.Payment{
			TransactionID: "TXN_20250118_A3F9K2",
			Status:        entity.StatusCompleted,
		}
		pending := entity.StatusPending
		processing := entity.StatusProcessing
		history := []entity.PaymentLog{
			{TransactionID: stored.TransactionID, NewStatus: entity.StatusPending},
			{TransactionID: stored.TransactionID, OldStatus: &pending, NewStatus: entity.StatusProcessing},
			{TransactionID: stored.TransactionID, OldStatus: &processing, NewStatus: entity.StatusCompleted},
		}
		f.paymentRepo.On("GetByTransactionID", mock.Anything, stored.TransactionID).Return(stored, nil)
		f.logRepo.On("ListByTransactionID", mock.Anything, stored.TransactionID).Return(history, nil)

		p, err := f.manager.GetPayment(context.Background(), stored.TransactionID, true)

		require.NoError(t, err)
		require.Len(t, p.Logs, 3)
		assert.True(t, p.Logs[0].IsInitial())
		assert.Equal(t, entity.StatusCompleted, p.Logs[2].NewStatus)
	})

	t.Run("propagates not found", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.paymentRepo.On("GetByTransactionID", mock.Anything, "TXN_20250118_ZZZZZZ").
			Return(nil, errs.NewPaymentNotFoundError("TXN_20250118_ZZZZZZ"))

		_, err := f.manager.GetPayment(context.Background(), "TXN_20250118_ZZZZZZ", true)

		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})
}

func TestListPayments(t *testing.T) {
	t.Run("applies pagination defaults", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.paymentRepo.On("List", mock.Anything, 0, defaultPageSize, (*entity.PaymentStatus)(nil)).
			Return([]*entity.Payment{}, int64(0), nil)

		_, total, err := f.manager.ListPayments(context.Background(), usecase.ListPaymentsRequest{})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("computes offset from page and clamps page size", func(t *testing.T) {
		f := setupRecordManagerTest()
		f.paymentRepo.On("List", mock.Anything, 200, maxPageSize, (*entity.PaymentStatus)(nil)).
			Return([]*entity.Payment{}, int64(0), nil)

		_, _, err := f.manager.ListPayments(context.Background(), usecase.ListPaymentsRequest{
			Page:     3,
			PageSize: 500,
		})

		assert.NoError(t, err)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("filters by status", func(t *testing.T) {
		f := setupRecordManagerTest()
		failed := entity.StatusFailed
		f.paymentRepo.On("List", mock.Anything, 0, defaultPageSize, &failed).
			Return([]*entity.Payment{{TransactionID: "TXN_20250118_A3F9K2", Status: failed}}, int64(1), nil)

		payments, total, err := f.manager.ListPayments(context.Background(), usecase.ListPaymentsRequest{
			Status: &failed,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, payments, 1)
		assert.Equal(t, failed, payments[0].Status)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		f := setupRecordManagerTest()
		bogus := entity.PaymentStatus("archived")

		_, _, err := f.manager.ListPayments(context.Background(), usecase.ListPaymentsRequest{Status: &bogus})

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		f.paymentRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
