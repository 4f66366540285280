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
	mockCore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
	mockPersistence "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/persistence"
	mockUsecase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/usecase"
)

const testTxnID = "TXN_20250118_A3F9K2"

type processorFixture struct {
	processor   *Processor
	uow         *mockPersistence.MockUnitOfWork
	paymentRepo *mockPersistence.MockPaymentRepository
	logRepo     *mockPersistence.MockPaymentLogRepository
	ledger      *mockUsecase.MockAccountLedger
}

func setupProcessorTest() *processorFixture {
	uow := new(mockPersistence.MockUnitOfWork)
	paymentRepo := new(mockPersistence.MockPaymentRepository)
	logRepo := new(mockPersistence.MockPaymentLogRepository)
	ledger := new(mockUsecase.MockAccountLedger)
	timeProvider := new(mockCore.MockTimeProvider)
	logger := new(mockCore.MockLogger)

	uow.On("GetPaymentRepository", mock.Anything).Return(paymentRepo).Maybe()
	uow.On("GetPaymentLogRepository", mock.Anything).Return(logRepo).Maybe()
	uow.On("Begin", mock.Anything).Return(context.Background(), nil).Maybe()
	timeProvider.On("Now").Return(time.Date(2025, 1, 18, 10, 5, 0, 0, time.UTC)).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return &processorFixture{
		processor:   NewProcessor(uow, ledger, timeProvider, logger),
		uow:         uow,
		paymentRepo: paymentRepo,
		logRepo:     logRepo,
		ledger:      ledger,
	}
}

func storedPayment(status entity.PaymentStatus) *entity.Payment {
	return &entity.Payment{
		TransactionID:     testTxnID,
		DebtorAccountID:   "ACC001",
		CreditorAccountID: "SUP001",
		Amount:            "1500.50",
		AmountInCents:     150050,
		Currency:          entity.DefaultCurrency,
		Status:            status,
		CreatedAt:         time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC),
	}
}

func TestAdvance(t *testing.T) {
	t.Run("moves pending to processing and appends log", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusPending), nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusPending).Return(nil)

		var transitionLog *entity.PaymentLog
		f.logRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.PaymentLog")).
			Run(func(args mock.Arguments) {
				transitionLog = args.Get(1).(*entity.PaymentLog)
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		p, err := f.processor.Advance(context.Background(), testTxnID, entity.StatusProcessing, "")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusProcessing, p.Status)
		assert.Nil(t, p.CompletedAt)

		require.NotNil(t, transitionLog)
		require.NotNil(t, transitionLog.OldStatus)
		assert.Equal(t, entity.StatusPending, *transitionLog.OldStatus)
		assert.Equal(t, entity.StatusProcessing, transitionLog.NewStatus)
	})

	t.Run("rejects transitions out of terminal statuses", func(t *testing.T) {
		for _, terminal := range []entity.PaymentStatus{entity.StatusCompleted, entity.StatusFailed} {
			t.Run(string(terminal), func(t *testing.T) {
				f := setupProcessorTest()
				f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
					Return(storedPayment(terminal), nil)
				f.uow.On("Rollback", mock.Anything).Return(nil)

				_, err := f.processor.Advance(context.Background(), testTxnID, entity.StatusProcessing, "")

				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				f.paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				f.logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("rejects skipping processing", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusPending), nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Advance(context.Background(), testTxnID, entity.StatusCompleted, "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transition *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transition)
		assert.Equal(t, "pending", transition.From)
		assert.Equal(t, "completed", transition.To)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		f := setupProcessorTest()

		_, err := f.processor.Advance(context.Background(), testTxnID, entity.PaymentStatus("archived"), "")

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("rolls back when the status row was changed concurrently", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusPending), nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusPending).
			Return(errs.NewInvalidTransitionError(testTxnID, "pending", "processing"))
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Advance(context.Background(), testTxnID, entity.StatusProcessing, "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		f.logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("propagates missing payment", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(nil, errs.NewPaymentNotFoundError(testTxnID))
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Advance(context.Background(), testTxnID, entity.StatusProcessing, "")

		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})
}

func TestComplete(t *testing.T) {
	t.Run("transfers funds and marks completed atomically", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusProcessing), nil)
		f.ledger.On("Transfer", mock.Anything, "ACC001", "SUP001", int64(150050)).Return(nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusProcessing).Return(nil)

		var completionLog *entity.PaymentLog
		f.logRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.PaymentLog")).
			Run(func(args mock.Arguments) {
				completionLog = args.Get(1).(*entity.PaymentLog)
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		p, err := f.processor.Complete(context.Background(), testTxnID)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, p.Status)
		require.NotNil(t, p.CompletedAt)
		assert.Empty(t, p.ErrorMessage)

		require.NotNil(t, completionLog)
		require.NotNil(t, completionLog.OldStatus)
		assert.Equal(t, entity.StatusProcessing, *completionLog.OldStatus)
		assert.Equal(t, entity.StatusCompleted, completionLog.NewStatus)
		f.ledger.AssertExpectations(t)
	})

	t.Run("refuses completion outside processing", func(t *testing.T) {
		for _, status := range []entity.PaymentStatus{entity.StatusPending, entity.StatusCompleted, entity.StatusFailed} {
			t.Run(string(status), func(t *testing.T) {
				f := setupProcessorTest()
				f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
					Return(storedPayment(status), nil)
				f.uow.On("Rollback", mock.Anything).Return(nil)

				_, err := f.processor.Complete(context.Background(), testTxnID)

				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				f.ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("rolls back everything when the transfer fails", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusProcessing), nil)
		f.ledger.On("Transfer", mock.Anything, "ACC001", "SUP001", int64(150050)).
			Return(errs.NewInsufficientBalanceError("ACC001", "100.00", "1500.50"))
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Complete(context.Background(), testTxnID)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rolls back the transfer when the status write loses the race", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusProcessing), nil)
		f.ledger.On("Transfer", mock.Anything, "ACC001", "SUP001", int64(150050)).Return(nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusProcessing).
			Return(errs.NewInvalidTransitionError(testTxnID, "processing", "completed"))
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Complete(context.Background(), testTxnID)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
	})
}

func TestFail(t *testing.T) {
	t.Run("marks the payment failed with the reason", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusProcessing), nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusProcessing).Return(nil)

		var failureLog *entity.PaymentLog
		f.logRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.PaymentLog")).
			Run(func(args mock.Arguments) {
				failureLog = args.Get(1).(*entity.PaymentLog)
			}).
			Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		p, err := f.processor.Fail(context.Background(), testTxnID, "Transaction timeout - please retry")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, p.Status)
		assert.Equal(t, "Transaction timeout - please retry", p.ErrorMessage)
		require.NotNil(t, p.CompletedAt)

		require.NotNil(t, failureLog)
		assert.Equal(t, entity.StatusFailed, failureLog.NewStatus)
		assert.Equal(t, "Transaction timeout - please retry", failureLog.ErrorMessage)
	})

	t.Run("never touches balances", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusProcessing), nil)
		f.paymentRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusProcessing).Return(nil)
		f.logRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		_, err := f.processor.Fail(context.Background(), testTxnID, "Network error during processing")

		require.NoError(t, err)
		f.ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cannot fail a completed payment", func(t *testing.T) {
		f := setupProcessorTest()
		f.paymentRepo.On("GetByTransactionIDForUpdate", mock.Anything, testTxnID).
			Return(storedPayment(entity.StatusCompleted), nil)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.processor.Fail(context.Background(), testTxnID, "late gateway callback")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
