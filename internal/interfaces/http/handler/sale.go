package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	tradeapp "github.com/shop/backend/internal/application/trade"
	"github.com/shop/backend/internal/interfaces/http/dto"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// parsePeriod binds a from/to date range. The returned end is exclusive,
// one day past the requested "to" so that day is fully included.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	var req dto.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.AddDate(0, 0, 1), nil
}

// Create records a sale. Items are priced from the current catalog and
// stock is decremented atomically; installment sales also generate the
// customer's payment schedule.
func (h *SaleHandler) Create(c *gin.Context) {
	var req tradeapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// Get returns a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sale)
}

// List returns a page of sales
func (h *SaleHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByPeriod returns all sales inside a date range
func (h *SaleHandler) ListByPeriod(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.saleService.ListByPeriod(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/period", h.ListByPeriod)
		sales.GET("/:id", h.Get)
	}
}
