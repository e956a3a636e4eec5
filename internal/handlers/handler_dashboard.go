package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/dto"
	"github.com/khatapana/khata_backend/internal/middleware"
)

// DashboardHandler serves the aggregated home-screen summary.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// registerDashboardRoutes sets up the protected dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := NewDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.GetSummary)
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Supplier and transaction counts, total outstanding balance, top owed suppliers and latest activity.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch dashboard"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
