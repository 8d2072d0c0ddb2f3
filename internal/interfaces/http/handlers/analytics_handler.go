package handlers

import (
	"github.com/gin-gonic/gin"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/internal/usecases"
)

// AnalyticsHandler handles dashboard analytics endpoints
type AnalyticsHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// Stats handles GET /analytics/stats
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsUsecase.GetUserStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Countries handles GET /analytics/countries
func (h *AnalyticsHandler) Countries(c *gin.Context) {
	counts, err := h.analyticsUsecase.GetCountryStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, counts)
}

// Registrations handles GET /analytics/registrations
func (h *AnalyticsHandler) Registrations(c *gin.Context) {
	days, err := queryInt(c, "days", 30)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	points, err := h.analyticsUsecase.GetRegistrationChart(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, points)
}
