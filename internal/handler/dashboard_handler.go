package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyhq/studyplan-backend/internal/middleware"
	"github.com/studyhq/studyplan-backend/internal/response"
	"github.com/studyhq/studyplan-backend/internal/service"
)

// DashboardHandler handles dashboard endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary godoc
// GET /api/v1/dashboard
// Returns summary stat cards and the upcoming-tasks list.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), claims.Email)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
