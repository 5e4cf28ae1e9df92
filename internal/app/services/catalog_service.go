package services

import (
	"context"
	"errors"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// CatalogService exposes one option category as a plain resource (batches, hostels, programs)
type CatalogService interface {
	Category() models.Category
	List(ctx context.Context) ([]*models.ConfigurableOption, error)
	Get(ctx context.Context, id int64) (*models.ConfigurableOption, error)
	Create(ctx context.Context, value, academicYear string, actorID int64) (*AddResult, error)
	Update(ctx context.Context, id int64, value, academicYear string, actorID int64) (*models.ConfigurableOption, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type catalogServiceImpl struct {
	category models.Category
	options  OptionService
	notFound error
}

// NewCatalogService creates a catalog bound to category. label names one entry in error messages.
func NewCatalogService(category models.Category, label string, options OptionService) CatalogService {
	return &catalogServiceImpl{
		category: category,
		options:  options,
		notFound: apperrors.NewResourceNotFoundError(label + " not found"),
	}
}

func (s *catalogServiceImpl) Category() models.Category {
	return s.category
}

// List returns the active entries
func (s *catalogServiceImpl) List(ctx context.Context) ([]*models.ConfigurableOption, error) {
	return s.options.List(ctx, string(s.category))
}

// Get returns an active entry of this catalog
func (s *catalogServiceImpl) Get(ctx context.Context, id int64) (*models.ConfigurableOption, error) {
	option, err := s.options.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOptionNotFound) {
			return nil, s.notFound
		}
		return nil, err
	}
	if option.Category != s.category || !option.IsActive {
		return nil, s.notFound
	}
	return option, nil
}

// Create adds an entry, resolving the academic year when it is empty
func (s *catalogServiceImpl) Create(ctx context.Context, value, academicYear string, actorID int64) (*AddResult, error) {
	return s.options.Add(ctx, AddOptionInput{
		Category:     string(s.category),
		Value:        value,
		AcademicYear: academicYear,
		ActorID:      actorID,
	})
}

// Update renames an entry
func (s *catalogServiceImpl) Update(ctx context.Context, id int64, value, academicYear string, actorID int64) (*models.ConfigurableOption, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.options.Update(ctx, id, UpdateOptionInput{
		Value:        value,
		AcademicYear: academicYear,
		ActorID:      actorID,
	})
}

// Delete deactivates an entry
func (s *catalogServiceImpl) Delete(ctx context.Context, id, actorID int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.options.Deactivate(ctx, id, actorID)
}
