package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/studentms/internal/app/models"
)

type StudentRepository struct{ mock.Mock }

func (m *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *StudentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StudentRepository) InsertIfAbsent(ctx context.Context, student *models.Student) (bool, error) {
	args := m.Called(ctx, student)
	return args.Bool(0), args.Error(1)
}

// ForEach feeds the students passed as the first Return value to fn
func (m *StudentRepository) ForEach(ctx context.Context, fn func(*models.Student) error) error {
	args := m.Called(ctx, fn)
	if students, ok := args.Get(0).([]*models.Student); ok {
		for _, s := range students {
			if err := fn(s); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}
