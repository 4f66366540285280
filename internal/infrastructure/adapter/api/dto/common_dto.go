package dto

import (
	"errors"

	domainerr "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
)

// ApiError represents a standardized error payload for the API
type ApiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ApiResponse is the envelope every endpoint returns
type ApiResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Error   *ApiError `json:"error,omitempty"`
}

// PaginationInfo carries pagination metadata for list responses
type PaginationInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationInfo computes pagination metadata for one page
func NewPaginationInfo(total int64, page, limit int) PaginationInfo {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationInfo{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// SuccessResponse builds a success envelope with optional message
func SuccessResponse(data any, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponseFrom builds an error envelope from a domain error
func ErrorResponseFrom(err error) ApiResponse {
	return ApiResponse{
		Success: false,
		Error: &ApiError{
			Code:    domainerr.ErrorCodeString(err),
			Message: err.Error(),
			Details: errorDetails(err),
		},
	}
}

// errorDetails extracts structured context from known error types
func errorDetails(err error) map[string]any {
	var insufficient *domainerr.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		return map[string]any{
			"account_id":        insufficient.AccountID,
			"available_balance": insufficient.Available,
			"required_amount":   insufficient.Required,
		}
	}

	var accountNotFound *domainerr.AccountNotFoundError
	if errors.As(err, &accountNotFound) {
		return map[string]any{"account_id": accountNotFound.AccountID}
	}

	var paymentNotFound *domainerr.PaymentNotFoundError
	if errors.As(err, &paymentNotFound) {
		return map[string]any{"transaction_id": paymentNotFound.TransactionID}
	}

	var transition *domainerr.InvalidTransitionError
	if errors.As(err, &transition) {
		return map[string]any{
			"transaction_id": transition.TransactionID,
			"old_status":     transition.From,
			"new_status":     transition.To,
		}
	}

	return nil
}
