package handlers

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// payoffHandler serves the debt payoff plan and its settings.
type payoffHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	payoffService portssvc.PayoffSvcFacade
}

func newPayoffHandler(ls portssvc.LedgerSvcFacade, ps portssvc.PayoffSvcFacade) *payoffHandler {
	return &payoffHandler{ledgerService: ls, payoffService: ps}
}

// registerPayoffRoutes registers the payoff planner routes.
func registerPayoffRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, payoffService portssvc.PayoffSvcFacade) {
	h := newPayoffHandler(ledgerService, payoffService)

	payoff := rg.Group("/payoff")
	{
		payoff.GET("/plan", h.getPlan)
		payoff.PUT("/settings", h.updateSettings)
	}
}

func (h *payoffHandler) getPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID, _ := middleware.GetProfileIDFromContext(c)

	plan, err := h.payoffService.Plan(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute payoff plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *payoffHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePayoffSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayoffSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	settings, err := h.ledgerService.UpdatePayoffSettings(c.Request.Context(), profileID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update payoff settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
