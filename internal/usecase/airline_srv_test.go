package usecase

import (
	"context"
	"net/http"
	"testing"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository/mocks"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/pkg/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAirlineService_CreateUppercasesCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAirlineRepository(ctrl)
	svc := NewAirlineService(repo, zap.NewNop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *entity.Airline) error {
			assert.Equal(t, "GA", a.Code)
			assert.True(t, a.IsActive)
			return nil
		})

	resp, err := svc.Create(context.Background(), &request.CreateAirlineRequest{
		Name:    "Garuda Indonesia",
		Code:    "ga",
		Country: "Indonesia",
	})

	require.NoError(t, err)
	assert.Equal(t, "GA", resp.Code)
}

func TestAirlineService_ToggleActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAirlineRepository(ctrl)
	svc := NewAirlineService(repo, zap.NewNop())
	id := uuid.New()

	repo.EXPECT().ToggleActive(gomock.Any(), id).Return(&entity.Airline{Base: entity.Base{ID: id}, IsActive: false}, nil)

	resp, err := svc.ToggleActive(context.Background(), id.String())
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	missing := uuid.New()
	repo.EXPECT().ToggleActive(gomock.Any(), missing).Return(nil, nil)

	_, err = svc.ToggleActive(context.Background(), missing.String())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
