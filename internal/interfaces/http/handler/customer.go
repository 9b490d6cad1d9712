package handler

import (
	"github.com/gin-gonic/gin"
	creditapp "github.com/shop/backend/internal/application/credit"
	partnerapp "github.com/shop/backend/internal/application/partner"
)

// CustomerHandler handles customer API endpoints, including the per-customer
// installment ledger views
type CustomerHandler struct {
	BaseHandler
	customerService    *partnerapp.CustomerService
	installmentService *creditapp.InstallmentService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService, installmentService *creditapp.InstallmentService) *CustomerHandler {
	return &CustomerHandler{
		customerService:    customerService,
		installmentService: installmentService,
	}
}

// Create creates a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, customer)
}

// Get returns a single customer with its derived debt
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// List returns a page of customers, optionally filtered by name or phone
func (h *CustomerHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a customer's contact data
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Installments returns the customer's full installment ledger
func (h *CustomerHandler) Installments(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installments, err := h.installmentService.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installments)
}

// PendingInstallments returns the customer's pending installments in the
// order payments would settle them
func (h *CustomerHandler) PendingInstallments(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installments, err := h.installmentService.ListPendingByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installments)
}

// OverdueInstallments returns the customer's pending installments whose due
// date has passed
func (h *CustomerHandler) OverdueInstallments(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	installments, err := h.installmentService.ListOverdueByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installments)
}

// Receipts returns the customer's payment history, newest first
func (h *CustomerHandler) Receipts(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receipts, err := h.installmentService.ListReceiptsByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
		customers.GET("/:id/installments", h.Installments)
		customers.GET("/:id/installments/pending", h.PendingInstallments)
		customers.GET("/:id/installments/overdue", h.OverdueInstallments)
		customers.GET("/:id/receipts", h.Receipts)
	}
}
