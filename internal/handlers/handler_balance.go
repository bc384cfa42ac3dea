package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kenzhang87-cpu/networth-tracker/internal/apperrors"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
	"github.com/kenzhang87-cpu/networth-tracker/internal/middleware"
)

// balanceHandler handles HTTP requests related to balance snapshots.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// registerBalanceRoutes registers routes related to balance snapshots.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.PUT("", h.upsertBalance)
		balances.GET("", h.listBalances)
		balances.DELETE("/:balanceID", h.deleteBalance)
	}
}

// upsertBalance godoc
// @Summary Record a balance snapshot
// @Description Records one (account, date) balance; an existing value for the pair is overwritten.
// @Tags balances
// @Accept json
// @Produce json
// @Param balance body dto.UpsertBalanceRequest true "Balance snapshot"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances [put]
func (h *balanceHandler) upsertBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.balanceService.UpsertBalance(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to upsert balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record balance"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(entry))
}

// listBalances godoc
// @Summary List balance snapshots
// @Description Lists every balance entry owned by the logged-in user.
// @Tags balances
// @Produce json
// @Success 200 {array} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.balanceService.ListBalances(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list balances"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListBalanceResponse(entries))
}

// deleteBalance godoc
// @Summary Delete a balance snapshot
// @Description Removes one balance entry by id.
// @Tags balances
// @Produce json
// @Param balanceID path string true "Balance ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances/{balanceID} [delete]
func (h *balanceHandler) deleteBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.balanceService.DeleteBalance(c.Request.Context(), c.Param("balanceID"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Balance not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete balance"})
		return
	}
	c.Status(http.StatusNoContent)
}
