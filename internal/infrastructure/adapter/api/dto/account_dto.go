package dto

import (
	"time"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
)

// AccountResponse represents an account in API responses
type AccountResponse struct {
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name"`
	AccountType string    `json:"account_type"`
	Balance     string    `json:"balance"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToAccountResponse maps an account entity to its API representation
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.ID,
		AccountName: a.Name,
		AccountType: string(a.Type),
		Balance:     a.GetBalance(),
		Currency:    a.Currency,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses maps a list of account entities
func ToAccountResponses(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, ToAccountResponse(a))
	}
	return responses
}
