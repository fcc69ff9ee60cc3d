package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/utils"
	"github.com/sameoldmason/finance-web-sub000/pkg/config"
)

// tokenServiceImpl implements the TokenSvcFacade interface
type tokenServiceImpl struct {
	BaseService
	cfg *config.Config
}

// NewTokenServiceImpl creates a new token service.
func NewTokenServiceImpl(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenServiceImpl{cfg: cfg}
}

// Ensure tokenServiceImpl implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenServiceImpl)(nil)

func (s *tokenServiceImpl) GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(profile.ProfileID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}
