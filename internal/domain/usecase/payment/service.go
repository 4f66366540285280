package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
)

// Service ties the payment components together for the API layer: record
// creation and queries, the status state machine, and the background
// scheduler kicked off after each creation.
type Service struct {
	recordManager *RecordManager
	processor     *Processor
	scheduler     usecase.ProcessingScheduler
	logger        coreport.Logger
}

// NewService creates a new payment service
func NewService(
	uow persistence.UnitOfWork,
	ledger usecase.AccountLedger,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
) *Service {
	return &Service{
		recordManager: NewRecordManager(uow, timeProvider, random, logger),
		processor:     NewProcessor(uow, ledger, timeProvider, logger),
		logger:        logger,
	}
}

// WithScheduler attaches the background processing scheduler. Without one,
// created payments stay pending until something else advances them.
func (s *Service) WithScheduler(scheduler usecase.ProcessingScheduler) *Service {
	s.scheduler = scheduler
	return s
}

// Processor exposes the state machine, used by the scheduler wiring
func (s *Service) Processor() *Processor {
	return s.processor
}

// CreatePayment creates a pending payment and schedules its background
// processing. The payment is returned as stored, still pending; its final
// status is reached asynchronously.
func (s *Service) CreatePayment(ctx context.Context, req usecase.CreatePaymentRequest) (*entity.Payment, error) {
	p, err := s.recordManager.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.scheduler != nil {
		s.scheduler.Schedule(p.TransactionID)
	}
	return p, nil
}

// GetPayment returns the payment, optionally with its status history
func (s *Service) GetPayment(ctx context.Context, transactionID string, includeLogs bool) (*entity.Payment, error) {
	return s.recordManager.GetPayment(ctx, transactionID, includeLogs)
}

// ListPayments returns one page of payments with the filtered total
func (s *Service) ListPayments(ctx context.Context, req usecase.ListPaymentsRequest) ([]*entity.Payment, int64, error) {
	return s.recordManager.ListPayments(ctx, req)
}

// StatusCodeFor maps known domain errors to HTTP status codes
func StatusCodeFor(err error) int {
	switch {
	case errs.IsAccountNotFoundError(err), errs.IsPaymentNotFoundError(err), errs.IsNotFoundError(err):
		return http.StatusNotFound

	case errs.IsDuplicateTransactionError(err), errs.IsInvalidTransitionError(err):
		return http.StatusConflict

	case errs.IsInsufficientBalanceError(err), errs.IsValidationError(err),
		errors.Is(err, errs.ErrInvalidStatus):
		return http.StatusBadRequest

	// Database concurrency failures surface as retryable conflicts
	case strings.Contains(strings.ToLower(err.Error()), "deadlock"),
		strings.Contains(strings.ToLower(err.Error()), "serialization"):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
