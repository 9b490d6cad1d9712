package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/shop/backend/internal/application/finance"
)

// ExpenseHandler handles expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create records an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, expense)
}

// Get returns a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// List returns a page of expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByPeriod returns all expenses inside a date range
func (h *ExpenseHandler) ListByPeriod(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expenses, err := h.expenseService.ListByPeriod(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expenses)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/period", h.ListByPeriod)
		expenses.GET("/:id", h.Get)
		expenses.DELETE("/:id", h.Delete)
	}
}
