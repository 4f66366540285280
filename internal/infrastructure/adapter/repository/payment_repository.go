package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentRow is the scan target for payment queries joined against the
// accounts table for name resolution
type paymentRow struct {
	TransactionID     string
	DebtorAccountID   string
	CreditorAccountID string
	Amount            string
	AmountInCents     int64
	Currency          string
	TransactionStatus string
	Description       string
	ErrorMessage      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	DebtorName        string
	CreditorName      string
}

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PaymentRepository) rowToEntity(row *paymentRow) *entity.Payment {
	return &entity.Payment{
		TransactionID:     row.TransactionID,
		DebtorAccountID:   row.DebtorAccountID,
		CreditorAccountID: row.CreditorAccountID,
		Amount:            row.Amount,
		AmountInCents:     row.AmountInCents,
		Currency:          row.Currency,
		Status:            entity.PaymentStatus(row.TransactionStatus),
		Description:       row.Description,
		ErrorMessage:      row.ErrorMessage,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		CompletedAt:       row.CompletedAt,
		DebtorName:        row.DebtorName,
		CreditorName:      row.CreditorName,
	}
}

func (r *PaymentRepository) modelToEntity(paymentModel *model.Payment) *entity.Payment {
	return &entity.Payment{
		TransactionID:     paymentModel.TransactionID,
		DebtorAccountID:   paymentModel.DebtorAccountID,
		CreditorAccountID: paymentModel.CreditorAccountID,
		Amount:            paymentModel.Amount,
		AmountInCents:     paymentModel.AmountInCents,
		Currency:          paymentModel.Currency,
		Status:            entity.PaymentStatus(paymentModel.TransactionStatus),
		Description:       paymentModel.Description,
		ErrorMessage:      paymentModel.ErrorMessage,
		CreatedAt:         paymentModel.CreatedAt,
		UpdatedAt:         paymentModel.UpdatedAt,
		CompletedAt:       paymentModel.CompletedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PaymentRepository) handleDatabaseError(operation string, err error, transactionID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Payment not found", map[string]any{
			"transaction_id": transactionID,
		})
		return errs.NewPaymentNotFoundError(transactionID)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateTransaction
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// joinedQuery builds the base payment query with debtor and creditor names
// resolved in one pass instead of per-row follow-up lookups
func (r *PaymentRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("payments").
		Select("payments.*, debtor.account_name AS debtor_name, creditor.account_name AS creditor_name").
		Joins("JOIN accounts AS debtor ON debtor.account_id = payments.debtor_account_id").
		Joins("JOIN accounts AS creditor ON creditor.account_id = payments.creditor_account_id")
}

// Create persists a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.Payment{
		TransactionID:     payment.TransactionID,
		DebtorAccountID:   payment.DebtorAccountID,
		CreditorAccountID: payment.CreditorAccountID,
		Amount:            payment.Amount,
		AmountInCents:     payment.AmountInCents,
		Currency:          payment.Currency,
		TransactionStatus: string(payment.Status),
		Description:       payment.Description,
		ErrorMessage:      payment.ErrorMessage,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
		CompletedAt:       payment.CompletedAt,
	}

	result := r.db.WithContext(ctx).Create(&paymentModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating payment", result.Error, payment.TransactionID)
	}

	r.logger.Debug("Payment row inserted", map[string]any{
		"transaction_id": payment.TransactionID,
		"status":         string(payment.Status),
	})
	return nil
}

// GetByTransactionID retrieves a payment with account names resolved
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var row paymentRow
	result := r.joinedQuery(ctx).
		Where("payments.transaction_id = ?", transactionID).
		Take(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting payment", result.Error, transactionID)
	}

	return r.rowToEntity(&row), nil
}

// GetByTransactionIDForUpdate retrieves a payment holding an exclusive row
// lock for the remainder of the transaction. Names are not resolved here;
// callers on this path only need the payment itself.
func (r *PaymentRepository) GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var paymentModel model.Payment
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&paymentModel, "transaction_id = ?", transactionID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking payment", result.Error, transactionID)
	}

	return r.modelToEntity(&paymentModel), nil
}

// UpdateStatus writes the payment's current status conditionally on the
// stored status still being expectedStatus. A write that affects zero rows
// means the payment either vanished or was advanced concurrently; both are
// surfaced instead of silently overwriting the newer state.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, payment *entity.Payment, expectedStatus entity.PaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("transaction_id = ? AND transaction_status = ?", payment.TransactionID, string(expectedStatus)).
		Updates(map[string]interface{}{
			"transaction_status": string(payment.Status),
			"error_message":      payment.ErrorMessage,
			"updated_at":         payment.UpdatedAt,
			"completed_at":       payment.CompletedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating payment status", result.Error, payment.TransactionID)
	}

	if result.RowsAffected == 0 {
		var current model.Payment
		lookup := r.db.WithContext(ctx).
			Select("transaction_status").
			First(&current, "transaction_id = ?", payment.TransactionID)
		if lookup.Error != nil {
			if errors.Is(lookup.Error, gorm.ErrRecordNotFound) {
				return errs.NewPaymentNotFoundError(payment.TransactionID)
			}
			return r.handleDatabaseError("re-reading payment status", lookup.Error, payment.TransactionID)
		}

		r.logger.Warn("Stale status transition rejected", map[string]any{
			"transaction_id":  payment.TransactionID,
			"expected_status": string(expectedStatus),
			"actual_status":   current.TransactionStatus,
			"new_status":      string(payment.Status),
		})
		return errs.NewInvalidTransitionError(payment.TransactionID, current.TransactionStatus, string(payment.Status))
	}

	return nil
}

// List returns one page of payments newest first, optionally filtered by
// status, with the total count of the filtered set
func (r *PaymentRepository) List(ctx context.Context, offset, limit int, status *entity.PaymentStatus) ([]*entity.Payment, int64, error) {
	countQuery := r.db.WithContext(ctx).Model(&model.Payment{})
	if status != nil {
		countQuery = countQuery.Where("transaction_status = ?", string(*status))
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting payments", err, "")
	}

	query := r.joinedQuery(ctx)
	if status != nil {
		query = query.Where("payments.transaction_status = ?", string(*status))
	}

	var rows []paymentRow
	result := query.
		Order("payments.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, 0, r.handleDatabaseError("listing payments", result.Error, "")
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, r.rowToEntity(&rows[i]))
	}
	return payments, total, nil
}
