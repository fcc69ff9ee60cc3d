package handlers

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// transactionHandler handles HTTP requests for transactions and transfers.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes for transactions and transfers.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	rg.POST("/transfers", h.createTransfer)
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	txn, pending, err := h.ledgerService.CreateTransaction(c.Request.Context(), profileID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	if pending != nil {
		// The mutation was held back by the debt overpayment guard; the
		// client retries with confirm=true to force it through.
		c.JSON(http.StatusConflict, dto.ToPendingConfirmationResponse(pending))
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	txn, pending, err := h.ledgerService.UpdateTransaction(c.Request.Context(), profileID, transactionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	if pending != nil {
		c.JSON(http.StatusConflict, dto.ToPendingConfirmationResponse(pending))
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	profileID, _ := middleware.GetProfileIDFromContext(c)

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), profileID, transactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	pair, pending, err := h.ledgerService.CreateTransfer(c.Request.Context(), profileID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transfer")
		return
	}
	if pending != nil {
		c.JSON(http.StatusConflict, dto.ToPendingConfirmationResponse(pending))
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		Outgoing: dto.ToTransactionResponse(&pair.Outgoing),
		Incoming: dto.ToTransactionResponse(&pair.Incoming),
	})
}
