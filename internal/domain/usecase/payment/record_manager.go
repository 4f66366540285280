package payment

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// RecordManager creates and queries payment records. Every created payment
// starts in pending with an audit entry; the id is generated server-side
// and never accepted from callers.
type RecordManager struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
	logger       coreport.Logger
}

// NewRecordManager creates a new payment record manager
func NewRecordManager(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
) *RecordManager {
	return &RecordManager{
		uow:          uow,
		timeProvider: timeProvider,
		random:       random,
		logger:       logger,
	}
}

// CreatePayment validates the request, persists a pending payment together
// with its creation audit entry, and returns the stored payment. The
// debtor's balance is checked here as a fast rejection; the authoritative
// check happens again under lock when the funds actually move.
func (m *RecordManager) CreatePayment(ctx context.Context, req usecase.CreatePaymentRequest) (*entity.Payment, error) {
	if req.DebtorAccountID == req.CreditorAccountID {
		return nil, errs.ErrSameAccount
	}

	amountInCents, err := entity.ValidatePaymentAmount(req.Amount)
	if err != nil {
		m.logger.Warn("Payment rejected, invalid amount", map[string]any{
			"debtor_id": req.DebtorAccountID,
			"amount":    req.Amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	accountRepo := m.uow.GetAccountRepository(ctx)

	debtor, err := accountRepo.GetByID(ctx, req.DebtorAccountID)
	if err != nil {
		return nil, err
	}
	creditor, err := accountRepo.GetByID(ctx, req.CreditorAccountID)
	if err != nil {
		return nil, err
	}

	if !debtor.CanCover(amountInCents) {
		m.logger.Warn("Payment rejected, insufficient balance", map[string]any{
			"debtor_id": req.DebtorAccountID,
			"available": debtor.GetBalance(),
			"required":  entity.CentsToString(amountInCents),
		})
		return nil, errs.NewInsufficientBalanceError(
			req.DebtorAccountID, debtor.GetBalance(), entity.CentsToString(amountInCents))
	}

	transactionID := entity.GenerateTransactionID(m.timeProvider, m.random)

	p, err := entity.NewPayment(
		transactionID,
		req.DebtorAccountID,
		req.CreditorAccountID,
		req.Amount,
		req.Description,
		m.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.uow.GetPaymentRepository(txCtx).Create(txCtx, p); err != nil {
		_ = m.uow.Rollback(txCtx)
		paymentErr := errs.NewPaymentError(
			transactionID, req.DebtorAccountID, req.CreditorAccountID, req.Amount,
			"persist payment", err)
		m.logger.Error("Failed to persist payment", paymentErr.LogFields())
		return nil, paymentErr
	}

	creationLog := entity.NewPaymentLog(transactionID, nil, entity.StatusPending, "", m.timeProvider)
	if err := m.uow.GetPaymentLogRepository(txCtx).Append(txCtx, creationLog); err != nil {
		_ = m.uow.Rollback(txCtx)
		return nil, err
	}

	if err := m.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	p.DebtorName = debtor.Name
	p.CreditorName = creditor.Name

	m.logger.Info("Payment created", map[string]any{
		"transaction_id": transactionID,
		"debtor_id":      req.DebtorAccountID,
		"creditor_id":    req.CreditorAccountID,
		"amount":         p.Amount,
	})
	return p, nil
}

// GetPayment returns the payment with account names resolved. The status
// history is loaded only when includeLogs is set.
func (m *RecordManager) GetPayment(ctx context.Context, transactionID string, includeLogs bool) (*entity.Payment, error) {
	p, err := m.uow.GetPaymentRepository(ctx).GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if includeLogs {
		logs, err := m.uow.GetPaymentLogRepository(ctx).ListByTransactionID(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		p.Logs = logs
	}
	return p, nil
}

// ListPayments returns one page of payments, newest first, together with
// the total count of the filtered set. Page defaults to 1 and the page
// size is clamped to a sane range.
func (m *RecordManager) ListPayments(ctx context.Context, req usecase.ListPaymentsRequest) ([]*entity.Payment, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	if req.Status != nil && !entity.IsValidStatus(string(*req.Status)) {
		return nil, 0, errs.ErrInvalidStatus
	}

	offset := (page - 1) * pageSize
	return m.uow.GetPaymentRepository(ctx).List(ctx, offset, pageSize, req.Status)
}
