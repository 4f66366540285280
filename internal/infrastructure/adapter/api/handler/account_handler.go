package handler

import (
	"net/http"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	domainerr "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
	paymentUseCase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/usecase/payment"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledger usecase.AccountLedger
	logger coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledger usecase.AccountLedger, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListAccounts handles the GET /api/accounts endpoint, optionally
// filtered by account type
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	typeParam := c.Query("type")

	var accounts []*entity.Account
	var err error

	if typeParam != "" {
		if !entity.IsValidAccountType(typeParam) {
			c.JSON(http.StatusBadRequest, dto.ApiResponse{
				Success: false,
				Error: &dto.ApiError{
					Code:    "INVALID_ACCOUNT_TYPE",
					Message: "Account type must be 'debtor' or 'creditor'",
				},
			})
			return
		}
		accounts, err = h.ledger.ListAccountsByType(c.Request.Context(), entity.AccountType(typeParam))
	} else {
		accounts, err = h.ledger.ListAccounts(c.Request.Context())
	}

	if err != nil {
		h.logger.Error("Error listing accounts", map[string]any{
			"error": err.Error(),
		})
		c.JSON(paymentUseCase.StatusCodeFor(err), dto.ErrorResponseFrom(domainerr.ErrInternalServer))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponses(accounts), ""))
}

// GetAccount handles the GET /api/accounts/:accountId endpoint
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountId")

	account, err := h.ledger.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(paymentUseCase.StatusCodeFor(err), dto.ErrorResponseFrom(err))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponse(account), ""))
}
