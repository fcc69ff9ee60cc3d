package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// netWorthHandler serves the net-worth aggregate and its retained history.
type netWorthHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newNetWorthHandler(ls portssvc.LedgerSvcFacade) *netWorthHandler {
	return &netWorthHandler{ledgerService: ls}
}

// registerNetWorthRoutes registers the net-worth route.
func registerNetWorthRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newNetWorthHandler(ledgerService)
	rg.GET("/networth", h.getNetWorth)
}

func (h *netWorthHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID, _ := middleware.GetProfileIDFromContext(c)

	summary, history, err := h.ledgerService.NetWorth(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, dto.NetWorthResponse{
		Summary: *summary,
		History: history,
	})
}
