package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/shop/backend/internal/application/report"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: dashboardService}
}

// Dashboard returns the aggregate figures for the shop dashboard: today's
// income and expenses, the running monthly balance and the total pending
// installment credit
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
	}
}
