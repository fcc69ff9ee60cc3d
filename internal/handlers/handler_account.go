package handlers

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledgerService: ls}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/:id/restore", h.restoreAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	account, err := h.ledgerService.CreateAccount(c.Request.Context(), profileID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profileID, _ := middleware.GetProfileIDFromContext(c)

	account, err := h.ledgerService.UpdateAccount(c.Request.Context(), profileID, accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	profileID, _ := middleware.GetProfileIDFromContext(c)

	if err := h.ledgerService.DeleteAccount(c.Request.Context(), profileID, accountID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *accountHandler) restoreAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	profileID, _ := middleware.GetProfileIDFromContext(c)

	if err := h.ledgerService.RestoreAccount(c.Request.Context(), profileID, accountID); err != nil {
		respondServiceError(c, logger, err, "Failed to restore account")
		return
	}

	c.Status(http.StatusNoContent)
}
