package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port/mocks"
)

func TestSaveProfile(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)
	repo.EXPECT().
		UpsertProfile(mock.Anything, domain.DriverProfile{DriverID: "d1", Name: "Ana Souza", ServiceType: "uber"}).
		Return(nil)

	svc := NewProfileUseCase(repo)
	assert.NoError(t, svc.SaveProfile(context.Background(), domain.DriverProfile{DriverID: "d1", Name: "  Ana Souza ", ServiceType: "uber"}))
}

func TestSaveProfile_Invalid(t *testing.T) {
	svc := NewProfileUseCase(mocks.NewMockProfileRepository(t))

	err := svc.SaveProfile(context.Background(), domain.DriverProfile{DriverID: "d1", Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}
