package handlers

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
	"github.com/sameoldmason/finance-web-sub000/pkg/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	profileService portssvc.ProfileSvcFacade
	tokenService   portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ps portssvc.ProfileSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		profileService: ps,
		tokenService:   ts,
	}
}

// registerAuthRoutes sets up the public routes for authentication. Both
// endpoints accept credentials, so they sit behind an IP rate limit.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServicesContainer) {
	h := NewAuthHandler(services.Profile, services.Token)

	// 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to register profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register profile"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.Authenticate(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid name or password"})
		} else {
			logger.Error("Failed to authenticate profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		}
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), profile)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Profile:     dto.ToProfileResponse(profile),
	})
}
