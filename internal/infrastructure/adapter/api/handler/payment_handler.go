package handler

import (
	"net/http"
	"strconv"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
	paymentUseCase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/usecase/payment"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *paymentUseCase.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePayment handles the POST /api/payments endpoint. The payment is
// persisted as pending and handed to the background processor; the
// response returns before processing starts.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid payment request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ApiResponse{
			Success: false,
			Error: &dto.ApiError{
				Code:    "INVALID_REQUEST",
				Message: "Invalid request format: " + err.Error(),
			},
		})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), usecase.CreatePaymentRequest{
		DebtorAccountID:   req.DebtorAccountID,
		CreditorAccountID: req.CreditorAccountID,
		Amount:            req.TransactionAmount,
		Description:       req.Description,
	})
	if err != nil {
		c.JSON(paymentUseCase.StatusCodeFor(err), dto.ErrorResponseFrom(err))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(
		dto.ToPaymentResponse(payment),
		"Payment created successfully",
	))
}

// GetPayment handles the GET /api/payments/:transactionId endpoint.
// Returns the payment with its full status history; clients poll this
// to track progress.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	transactionID := c.Param("transactionId")

	payment, err := h.paymentService.GetPayment(c.Request.Context(), transactionID, true)
	if err != nil {
		c.JSON(paymentUseCase.StatusCodeFor(err), dto.ErrorResponseFrom(err))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToPaymentResponse(payment), ""))
}

// ListPayments handles the GET /api/payments endpoint with pagination
// and optional status filtering, newest first
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 0)

	req := usecase.ListPaymentsRequest{
		Page:     page,
		PageSize: limit,
	}

	if statusParam := c.Query("status"); statusParam != "" {
		status := entity.PaymentStatus(statusParam)
		req.Status = &status
	}

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), req)
	if err != nil {
		c.JSON(paymentUseCase.StatusCodeFor(err), dto.ErrorResponseFrom(err))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(
		dto.ToPaymentListResponse(payments, total, normalizePage(page), normalizeLimit(limit)),
		"",
	))
}

// parseIntQuery reads an integer query parameter, falling back on the
// default for missing or malformed values
func parseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// normalizePage mirrors the clamping the list use case applies
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// normalizeLimit mirrors the clamping the list use case applies
func normalizeLimit(limit int) int {
	if limit < 1 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}
