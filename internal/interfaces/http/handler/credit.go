package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	creditapp "github.com/shop/backend/internal/application/credit"
	"github.com/shopspring/decimal"
)

// CreditHandler handles installment payment and installment query endpoints
type CreditHandler struct {
	BaseHandler
	allocationService  *creditapp.AllocationService
	installmentService *creditapp.InstallmentService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(allocationService *creditapp.AllocationService, installmentService *creditapp.InstallmentService) *CreditHandler {
	return &CreditHandler{
		allocationService:  allocationService,
		installmentService: installmentService,
	}
}

// PayInstallmentRequest represents a payment collected against an installment
type PayInstallmentRequest struct {
	InstallmentID  uuid.UUID       `json:"installment_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IdempotencyKey string          `json:"idempotency_key" binding:"max=100"`
}

// Pay applies a payment to the customer owning the given installment. The
// amount cascades across the customer's pending installments in due-date
// order; whatever exceeds the total pending debt is reported back as
// remaining credit.
func (h *CreditHandler) Pay(c *gin.Context) {
	var req PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.allocationService.PayInstallment(c.Request.Context(), creditapp.PaymentRequest{
		TriggerInstallmentID: req.InstallmentID,
		Amount:               req.Amount,
		IdempotencyKey:       req.IdempotencyKey,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns a page of installments across all customers
func (h *CreditHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.installmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a single installment by ID
func (h *CreditHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installment, err := h.installmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installment)
}

// RegisterRoutes registers credit routes
func (h *CreditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	credit := rg.Group("/credit")
	{
		credit.POST("/payments", h.Pay)
		credit.GET("/installments", h.List)
		credit.GET("/installments/:id", h.Get)
	}
}
