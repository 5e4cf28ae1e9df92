package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/mocks"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

func TestCatalogService_GetRejectsOtherCategories(t *testing.T) {
	repo := new(mocks.OptionRepository)
	options, _ := newTestOptionService(repo)
	hostels := NewCatalogService(models.CategoryHostel, "Hostel", options)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&models.ConfigurableOption{ID: 1, Category: models.CategoryHostel, Value: "North", IsActive: true}, nil)
	repo.On("GetByID", ctx, int64(2)).Return(&models.ConfigurableOption{ID: 2, Category: models.CategoryBatch, Value: "2024-A", IsActive: true}, nil)
	repo.On("GetByID", ctx, int64(3)).Return(&models.ConfigurableOption{ID: 3, Category: models.CategoryHostel, Value: "Old", IsActive: false}, nil)
	repo.On("GetByID", ctx, int64(4)).Return(nil, apperrors.ErrOptionNotFound)

	option, err := hostels.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "North", option.Value)

	for _, id := range []int64{2, 3, 4} {
		_, err := hostels.Get(ctx, id)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		msg, ok := apperrors.PublicMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "Hostel not found", msg)
	}
}

func TestCatalogService_CreateUsesCategory(t *testing.T) {
	repo := new(mocks.OptionRepository)
	options, _ := newTestOptionService(repo)
	programs := NewCatalogService(models.CategoryProgram, "Program", options)
	ctx := context.Background()

	existing := &models.ConfigurableOption{ID: 5, Category: models.CategoryProgram, Value: "NEET", AcademicYear: "2024-2025", IsActive: true}
	repo.On("FindActive", ctx, models.CategoryProgram, "NEET", "2024-2025").Return(existing, nil)

	result, err := programs.Create(ctx, "NEET", "", 1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyExists, result.Outcome)
	assert.Equal(t, models.CategoryProgram, programs.Category())
}

func TestCatalogService_DeleteChecksCategory(t *testing.T) {
	repo := new(mocks.OptionRepository)
	options, _ := newTestOptionService(repo)
	batches := NewCatalogService(models.CategoryBatch, "Batch", options)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(8)).Return(&models.ConfigurableOption{ID: 8, Category: models.CategoryHostel, IsActive: true}, nil)

	err := batches.Delete(ctx, 8, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything, mock.Anything)
}
