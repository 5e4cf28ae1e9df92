package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/studentms/internal/app/models"
)

type OptionRepository struct{ mock.Mock }

func (m *OptionRepository) ListActive(ctx context.Context, category models.Category) ([]*models.ConfigurableOption, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ConfigurableOption), args.Error(1)
}

func (m *OptionRepository) GetByID(ctx context.Context, id int64) (*models.ConfigurableOption, error) {
	return m.one(m.Called(ctx, id))
}

func (m *OptionRepository) FindActive(ctx context.Context, category models.Category, value, academicYear string) (*models.ConfigurableOption, error) {
	return m.one(m.Called(ctx, category, value, academicYear))
}

func (m *OptionRepository) FindActiveByValue(ctx context.Context, category models.Category, value string) (*models.ConfigurableOption, error) {
	return m.one(m.Called(ctx, category, value))
}

func (m *OptionRepository) Create(ctx context.Context, option *models.ConfigurableOption) error {
	return m.Called(ctx, option).Error(0)
}

func (m *OptionRepository) Update(ctx context.Context, option *models.ConfigurableOption) error {
	return m.Called(ctx, option).Error(0)
}

func (m *OptionRepository) Deactivate(ctx context.Context, id int64, modifiedBy *int64) error {
	return m.Called(ctx, id, modifiedBy).Error(0)
}

func (m *OptionRepository) one(args mock.Arguments) (*models.ConfigurableOption, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConfigurableOption), args.Error(1)
}
