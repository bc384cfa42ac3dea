package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
	"github.com/kenzhang87-cpu/networth-tracker/internal/middleware"
)

// seriesHandler serves the derived time-series views.
type seriesHandler struct {
	seriesService portssvc.SeriesSvcFacade
}

// registerSeriesRoutes registers routes related to time-series views.
func registerSeriesRoutes(rg *gin.RouterGroup, seriesService portssvc.SeriesSvcFacade) {
	h := &seriesHandler{seriesService: seriesService}

	series := rg.Group("/series")
	{
		series.GET("/networth", h.netWorthSeries)
		series.GET("/rollup", h.categoryRollup)
	}
}

// netWorthSeries godoc
// @Summary Net worth time series
// @Description Returns the per-date net worth points plus the chart axis scale.
// @Tags series
// @Produce json
// @Success 200 {object} dto.NetWorthSeriesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /series/networth [get]
func (h *seriesHandler) netWorthSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	points, scale, err := h.seriesService.NetWorthSeries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build net worth series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build series"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNetWorthSeriesResponse(points, scale))
}

// categoryRollup godoc
// @Summary Category rollup series
// @Description Returns the per-date category rollup rows, month ticks and the stacked chart axis scale.
// @Tags series
// @Produce json
// @Success 200 {object} dto.RollupResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /series/rollup [get]
func (h *seriesHandler) categoryRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, ticks, scale, err := h.seriesService.CategoryRollup(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build category rollup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build rollup"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRollupResponse(rows, ticks, scale))
}
