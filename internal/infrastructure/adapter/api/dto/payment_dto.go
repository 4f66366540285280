package dto

import (
	"time"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// CreatePaymentRequest represents the API request for creating a payment
type CreatePaymentRequest struct {
	DebtorAccountID   string `json:"debtor_account_id" binding:"required,max=50"`
	CreditorAccountID string `json:"creditor_account_id" binding:"required,max=50"`
	TransactionAmount string `json:"transaction_amount" binding:"required"`
	Description       string `json:"description" binding:"max=500"`
}

// PaymentLogResponse represents one audit entry in a payment's history
type PaymentLogResponse struct {
	OldStatus    *string   `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaymentResponse represents a payment, with account names resolved
type PaymentResponse struct {
	TransactionID     string               `json:"transaction_id"`
	DebtorAccountID   string               `json:"debtor_account_id"`
	CreditorAccountID string               `json:"creditor_account_id"`
	DebtorName        string               `json:"debtor_name"`
	CreditorName      string               `json:"creditor_name"`
	TransactionAmount string               `json:"transaction_amount"`
	Currency          string               `json:"currency"`
	TransactionStatus string               `json:"transaction_status"`
	Description       string               `json:"description,omitempty"`
	ErrorMessage      string               `json:"error_message,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	CompletedAt       *time.Time           `json:"completed_at"`
	Logs              []PaymentLogResponse `json:"logs,omitempty"`
}

// PaymentListResponse is the paginated payment list payload
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ToPaymentResponse maps a payment entity to its API representation
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		TransactionID:     p.TransactionID,
		DebtorAccountID:   p.DebtorAccountID,
		CreditorAccountID: p.CreditorAccountID,
		DebtorName:        p.DebtorName,
		CreditorName:      p.CreditorName,
		TransactionAmount: p.Amount,
		Currency:          p.Currency,
		TransactionStatus: string(p.Status),
		Description:       p.Description,
		ErrorMessage:      p.ErrorMessage,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		CompletedAt:       p.CompletedAt,
	}

	for _, log := range p.Logs {
		resp.Logs = append(resp.Logs, ToPaymentLogResponse(log))
	}

	return resp
}

// ToPaymentLogResponse maps a payment log entity to its API representation
func ToPaymentLogResponse(log entity.PaymentLog) PaymentLogResponse {
	var oldStatus *string
	if log.OldStatus != nil {
		s := string(*log.OldStatus)
		oldStatus = &s
	}

	return PaymentLogResponse{
		OldStatus:    oldStatus,
		NewStatus:    string(log.NewStatus),
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    log.CreatedAt,
	}
}

// ToPaymentListResponse maps one page of payments with pagination metadata
func ToPaymentListResponse(payments []*entity.Payment, total int64, page, limit int) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, ToPaymentResponse(p))
	}

	return PaymentListResponse{
		Items:      items,
		Pagination: NewPaginationInfo(total, page, limit),
	}
}
