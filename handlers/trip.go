package handlers

import (
	"net/http"
	"strings"

	"orbit/services/trip"
	"orbit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler fronts the trip-planning pipeline.
type TripHandler struct {
	Service trip.Service
}

func NewTripHandler(svc trip.Service) *TripHandler {
	return &TripHandler{Service: svc}
}

// RootHandler is the liveness probe.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}

// TripPlanHandler runs the full planning pipeline for a free-text query.
func (h *TripHandler) TripPlanHandler(c *gin.Context) {
	logger := utils.GetLogger()

	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "query parameter is required")
		return
	}

	result, err := h.Service.PlanTrip(c.Request.Context(), query)
	if err != nil {
		logger.Error("Trip planning failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Trip planning failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
