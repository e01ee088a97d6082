package service_test

import (
	"context"
	"testing"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/repository"
	"mufasa/fitness-brain/internal/repository/mocks"
	"mufasa/fitness-brain/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	svc := service.NewProfileService(repo)

	repo.EXPECT().GetByUserID(gomock.Any(), "rashad").Return(&domain.Profile{UserID: "rashad", Name: "Rashad"}, nil)
	repo.EXPECT().GetByUserID(gomock.Any(), "ghost").Return(nil, repository.ErrNotFound)

	p, err := svc.GetProfile(ctx, "rashad")
	require.NoError(t, err)
	assert.Equal(t, "Rashad", p.Name)

	_, err = svc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, service.ErrProfileNotFound)

	_, err = svc.GetProfile(ctx, "")
	assert.ErrorIs(t, err, service.ErrValidationFailed)
}

func TestProfileService_SaveProfile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	svc := service.NewProfileService(repo)

	repo.EXPECT().Upsert(gomock.Any(), &domain.Profile{
		UserID:      "rashad",
		Name:        "Rashad",
		Injuries:    []string{"left knee"},
		DaysPerWeek: 4,
	}).Return(nil)

	saved, err := svc.SaveProfile(ctx, &domain.Profile{
		UserID:      " rashad ",
		Name:        "Rashad",
		Injuries:    []string{" left knee ", "  "},
		DaysPerWeek: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "rashad", saved.UserID)

	for _, bad := range []*domain.Profile{nil, {Name: "no id"}, {UserID: "u", DaysPerWeek: 9}} {
		_, err := svc.SaveProfile(ctx, bad)
		assert.ErrorIs(t, err, service.ErrValidationFailed)
	}
}
