package handlers

import (
	"net/http"

	"photobook_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/overview", h.GetOverview)
		dashboard.GET("/monthly-bookings", h.GetMonthlyBookings)
		dashboard.GET("/payments-insights", h.GetPaymentsInsights)
	}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) GetMonthlyBookings(c *gin.Context) {
	rows, err := h.dashboardService.GetMonthlyBookings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) GetPaymentsInsights(c *gin.Context) {
	insights, err := h.dashboardService.GetPaymentsInsights()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
