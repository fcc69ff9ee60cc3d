package handlers

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newBillHandler(ls portssvc.LedgerSvcFacade) *billHandler {
	return &billHandler{ledgerService: ls}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newBillHandler(ledgerService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", h.deleteBill)
		bills.POST("/:id/pay", h.payBill)
	}
}

func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	bill, err := h.ledgerService.CreateBill(c.Request.Context(), profileID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	bill, err := h.ledgerService.UpdateBill(c.Request.Context(), profileID, billID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update bill")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")
	profileID, _ := middleware.GetProfileIDFromContext(c)

	if err := h.ledgerService.DeleteBill(c.Request.Context(), profileID, billID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete bill")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *billHandler) payBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")
	profileID, _ := middleware.GetProfileIDFromContext(c)

	bill, txn, err := h.ledgerService.PayBill(c.Request.Context(), profileID, billID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay bill")
		return
	}

	c.JSON(http.StatusOK, dto.PayBillResponse{
		Bill:        dto.ToBillResponse(bill),
		Transaction: dto.ToTransactionResponse(txn),
	})
}
