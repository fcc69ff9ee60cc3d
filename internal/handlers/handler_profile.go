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

// profileHandler handles HTTP requests for the authenticated profile.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes for the authenticated profile.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.DELETE("", h.deleteProfile)
	}
}

func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID, ok := middleware.GetProfileIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		} else {
			logger.Error("Failed to get profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *profileHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID, ok := middleware.GetProfileIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), profileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		} else {
			logger.Error("Failed to delete profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete profile"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
