package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
	"github.com/kenzhang87-cpu/networth-tracker/internal/middleware"
)

// Uploads beyond this size are rejected before parsing.
const maxLedgerBytes = 10 << 20

// ledgerHandler handles bulk ledger import and export.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers routes related to ledger import/export.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/import", h.importLedger)
		ledger.GET("/export", h.exportLedger)
	}
}

// importLedger godoc
// @Summary Import a ledger file
// @Description Bulk-imports delimited ledger text, replacing the stored balance history. Partial success is reported, never masked.
// @Tags ledger
// @Accept plain
// @Produce json
// @Success 200 {object} dto.ImportLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/import [post]
func (h *ledgerHandler) importLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLedgerBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	summary, err := h.ledgerService.ImportLedger(c.Request.Context(), userID, string(body))
	if err != nil {
		logger.Error("Ledger import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Import failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToImportLedgerResponse(summary))
}

// exportLedger godoc
// @Summary Export the ledger
// @Description Writes the full balance history in the canonical 5-column CSV form.
// @Tags ledger
// @Produce plain
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/export [get]
func (h *ledgerHandler) exportLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	csv, err := h.ledgerService.ExportLedger(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Ledger export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ledger.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
