package handlers

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// ledgerHandler serves the full ledger snapshot and its profile-wide
// operations (preferences, reset).
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers snapshot-wide routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getLedger)
		ledger.PUT("/preferences", h.updatePreferences)
		ledger.POST("/reset", h.reset)
	}
}

func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID, _ := middleware.GetProfileIDFromContext(c)

	snap, err := h.ledgerService.GetLedger(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(snap))
}

func (h *ledgerHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	snap, err := h.ledgerService.UpdatePreferences(c.Request.Context(), profileID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(snap))
}

func (h *ledgerHandler) reset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	if err := h.ledgerService.Reset(c.Request.Context(), profileID, req.Scope); err != nil {
		respondServiceError(c, logger, err, "Failed to reset ledger")
		return
	}

	c.Status(http.StatusNoContent)
}
