package usecase

import (
	"context"
	"fmt"
	"strings"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

// ProfileUseCase manages driver profiles.
type ProfileUseCase struct {
	repo port.ProfileRepository
}

func NewProfileUseCase(repo port.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// GetProfile returns nil when the driver has not filled a profile yet.
func (u *ProfileUseCase) GetProfile(ctx context.Context, driverID string) (*domain.DriverProfile, error) {
	return u.repo.GetProfile(ctx, driverID)
}

// SaveProfile validates and stores the profile.
func (u *ProfileUseCase) SaveProfile(ctx context.Context, profile domain.DriverProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.ServiceType = strings.TrimSpace(profile.ServiceType)
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := u.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
