package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/utils"
)

// profileServiceImpl implements the ProfileSvcFacade interface
type profileServiceImpl struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewProfileServiceImpl creates a new profile service.
func NewProfileServiceImpl(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileServiceImpl{profileRepo: profileRepo}
}

// Ensure profileServiceImpl implements the ProfileSvcFacade interface
var _ portssvc.ProfileSvcFacade = (*profileServiceImpl)(nil)

func (s *profileServiceImpl) Register(ctx context.Context, req dto.RegisterProfileRequest) (*domain.Profile, error) {
	existing, err := s.profileRepo.FindProfileByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check profile name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: profile name %q is taken", apperrors.ErrDuplicate, req.Name)
	}

	hash, err := utils.HashProfilePassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash profile password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := domain.Profile{
		ProfileID:    uuid.NewString(),
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save new profile", slog.String("profile_name", req.Name))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.LogInfo(ctx, "Profile registered", slog.String("profile_id", profile.ProfileID))
	return &profile, nil
}

func (s *profileServiceImpl) Authenticate(ctx context.Context, name, password string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if !utils.VerifyProfilePassword(password, profile.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return profile, nil
}

func (s *profileServiceImpl) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByID(ctx, profileID)
}

func (s *profileServiceImpl) DeleteProfile(ctx context.Context, profileID string) error {
	if _, err := s.profileRepo.FindProfileByID(ctx, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.MarkProfileDeleted(ctx, profileID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete profile", slog.String("profile_id", profileID))
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	s.LogInfo(ctx, "Profile deleted", slog.String("profile_id", profileID))
	return nil
}
