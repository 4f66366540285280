package payment

import (
	"context"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/persistence"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
)

// Processor moves payments through the status state machine. Every
// transition is written as a compare-and-swap on the stored status and
// committed together with its audit entry, so a payment that lost a race
// is rejected instead of silently overwritten.
type Processor struct {
	uow          persistence.UnitOfWork
	ledger       usecase.AccountLedger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewProcessor creates a new payment processor
func NewProcessor(
	uow persistence.UnitOfWork,
	ledger usecase.AccountLedger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Processor {
	return &Processor{
		uow:          uow,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Advance performs one status transition in a single transaction: lock the
// payment, validate the move against the legal graph, CAS the status row
// and append the audit entry.
func (p *Processor) Advance(ctx context.Context, transactionID string, newStatus entity.PaymentStatus, errorMessage string) (*entity.Payment, error) {
	if !entity.IsValidStatus(string(newStatus)) {
		return nil, errs.ErrInvalidStatus
	}

	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	pay, err := p.advanceInTx(txCtx, transactionID, newStatus, errorMessage)
	if err != nil {
		_ = p.uow.Rollback(txCtx)
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	p.logger.Info("Payment status changed", map[string]any{
		"transaction_id": transactionID,
		"new_status":     string(newStatus),
	})
	return pay, nil
}

// Complete transfers the funds and transitions processing -> completed in
// one transaction. The payment row is locked first so the balance check,
// the transfer and the status change act on a consistent snapshot; if
// anything fails nothing becomes visible.
func (p *Processor) Complete(ctx context.Context, transactionID string) (*entity.Payment, error) {
	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	pay, err := p.completeInTx(txCtx, transactionID)
	if err != nil {
		_ = p.uow.Rollback(txCtx)
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	p.logger.Info("Payment completed", map[string]any{
		"transaction_id": transactionID,
		"debtor_id":      pay.DebtorAccountID,
		"creditor_id":    pay.CreditorAccountID,
		"amount":         pay.Amount,
	})
	return pay, nil
}

// Fail transitions the payment to failed carrying the reason. No balance
// is touched.
func (p *Processor) Fail(ctx context.Context, transactionID string, reason string) (*entity.Payment, error) {
	pay, err := p.Advance(ctx, transactionID, entity.StatusFailed, reason)
	if err != nil {
		return nil, err
	}

	p.logger.Warn("Payment failed", map[string]any{
		"transaction_id": transactionID,
		"reason":         reason,
	})
	return pay, nil
}

func (p *Processor) advanceInTx(txCtx context.Context, transactionID string, newStatus entity.PaymentStatus, errorMessage string) (*entity.Payment, error) {
	paymentRepo := p.uow.GetPaymentRepository(txCtx)

	pay, err := paymentRepo.GetByTransactionIDForUpdate(txCtx, transactionID)
	if err != nil {
		return nil, err
	}

	oldStatus := pay.Status
	if err := pay.ApplyTransition(newStatus, errorMessage, p.timeProvider); err != nil {
		return nil, err
	}

	if err := paymentRepo.UpdateStatus(txCtx, pay, oldStatus); err != nil {
		return nil, err
	}

	transitionLog := entity.NewPaymentLog(transactionID, &oldStatus, newStatus, errorMessage, p.timeProvider)
	if err := p.uow.GetPaymentLogRepository(txCtx).Append(txCtx, transitionLog); err != nil {
		return nil, err
	}
	return pay, nil
}

func (p *Processor) completeInTx(txCtx context.Context, transactionID string) (*entity.Payment, error) {
	paymentRepo := p.uow.GetPaymentRepository(txCtx)

	pay, err := paymentRepo.GetByTransactionIDForUpdate(txCtx, transactionID)
	if err != nil {
		return nil, err
	}

	if pay.Status != entity.StatusProcessing {
		return nil, errs.NewInvalidTransitionError(transactionID, string(pay.Status), string(entity.StatusCompleted))
	}

	if err := p.ledger.Transfer(txCtx, pay.DebtorAccountID, pay.CreditorAccountID, pay.AmountInCents); err != nil {
		return nil, err
	}

	oldStatus := pay.Status
	if err := pay.ApplyTransition(entity.StatusCompleted, "", p.timeProvider); err != nil {
		return nil, err
	}
	if err := paymentRepo.UpdateStatus(txCtx, pay, oldStatus); err != nil {
		return nil, err
	}

	completionLog := entity.NewPaymentLog(transactionID, &oldStatus, entity.StatusCompleted, "", p.timeProvider)
	if err := p.uow.GetPaymentLogRepository(txCtx).Append(txCtx, completionLog); err != nil {
		return nil, err
	}
	return pay, nil
}
