package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/academicyear"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/validation"
)

const optionEntity = "configurable_option"

// AddOutcome tells whether an add created a new option
type AddOutcome string

const (
	OutcomeAdded         AddOutcome = "ADDED"
	OutcomeAlreadyExists AddOutcome = "ALREADY_EXISTS"
)

// AddResult is the option produced by an add together with its outcome
type AddResult struct {
	Option  *models.ConfigurableOption
	Outcome AddOutcome
}

// AddOptionInput carries the fields of a new option. An empty AcademicYear means the current one.
type AddOptionInput struct {
	Category     string
	Value        string
	AcademicYear string
	ActorID      int64
}

// UpdateOptionInput carries new option fields. An empty AcademicYear keeps the stored one.
type UpdateOptionInput struct {
	Value        string
	AcademicYear string
	ActorID      int64
}

// Resolution is the outcome of matching free text against a category.
// OptionID is nil when no active option matched and Value is then the raw text.
type Resolution struct {
	OptionID *int64
	Value    string
}

// OptionService is the reference data registry
type OptionService interface {
	List(ctx context.Context, category string) ([]*models.ConfigurableOption, error)
	Get(ctx context.Context, id int64) (*models.ConfigurableOption, error)
	Add(ctx context.Context, in AddOptionInput) (*AddResult, error)
	Update(ctx context.Context, id int64, in UpdateOptionInput) (*models.ConfigurableOption, error)
	Deactivate(ctx context.Context, id, actorID int64) error
	Resolve(ctx context.Context, category models.Category, raw string) (Resolution, error)
}

type optionServiceImpl struct {
	optionRepo repositories.IOptionRepository
	years      *academicyear.Resolver
	audit      AuditService
}

// NewOptionService creates a new option service
func NewOptionService(optionRepo repositories.IOptionRepository, years *academicyear.Resolver, audit AuditService) OptionService {
	return &optionServiceImpl{
		optionRepo: optionRepo,
		years:      years,
		audit:      audit,
	}
}

func parseCategory(raw string) (models.Category, error) {
	category, ok := models.ParseCategory(raw)
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("Unknown category %q", raw))
	}
	return category, nil
}

func validateAcademicYear(year string) error {
	if !validation.ValidAcademicYear(year) {
		return apperrors.NewValidationError("Academic year must look like 2024-2025")
	}
	return nil
}

func normalizeValue(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.NewValidationError("Value cannot be empty")
	}
	return value, nil
}

// List returns the active options of a category
func (s *optionServiceImpl) List(ctx context.Context, rawCategory string) ([]*models.ConfigurableOption, error) {
	category, err := parseCategory(rawCategory)
	if err != nil {
		return nil, err
	}

	options, err := s.optionRepo.ListActive(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error retrieving options: %w", err)
	}
	return options, nil
}

// Get returns an option by id, inactive ones included
func (s *optionServiceImpl) Get(ctx context.Context, id int64) (*models.ConfigurableOption, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid option ID")
	}
	return s.optionRepo.GetByID(ctx, id)
}

// Add creates an active option unless an identical active one already exists
func (s *optionServiceImpl) Add(ctx context.Context, in AddOptionInput) (*AddResult, error) {
	category, err := parseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	value, err := normalizeValue(in.Value)
	if err != nil {
		return nil, err
	}

	year := strings.TrimSpace(in.AcademicYear)
	if year == "" {
		year = s.years.Current()
	}
	if err := validateAcademicYear(year); err != nil {
		return nil, err
	}

	existing, err := s.optionRepo.FindActive(ctx, category, value, year)
	switch {
	case err == nil:
		return &AddResult{Option: existing, Outcome: OutcomeAlreadyExists}, nil
	case !errors.Is(err, apperrors.ErrOptionNotFound):
		return nil, fmt.Errorf("error checking existing option: %w", err)
	}

	option := &models.ConfigurableOption{
		Category:     category,
		Value:        value,
		AcademicYear: year,
		CreatedBy:    actorRef(in.ActorID),
		ModifiedBy:   actorRef(in.ActorID),
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		if errors.Is(err, repositories.ErrActiveOptionExists) {
			// Lost a race with a concurrent add of the same option.
			existing, findErr := s.optionRepo.FindActive(ctx, category, value, year)
			if findErr != nil {
				return nil, fmt.Errorf("error reading concurrently added option: %w", findErr)
			}
			return &AddResult{Option: existing, Outcome: OutcomeAlreadyExists}, nil
		}
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionCreate, optionEntity, option.ID, in.ActorID,
		fmt.Sprintf("%s %q (%s)", option.Category, option.Value, option.AcademicYear))

	return &AddResult{Option: option, Outcome: OutcomeAdded}, nil
}

// Update changes the value and optionally the academic year of an option
func (s *optionServiceImpl) Update(ctx context.Context, id int64, in UpdateOptionInput) (*models.ConfigurableOption, error) {
	value, err := normalizeValue(in.Value)
	if err != nil {
		return nil, err
	}

	option, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if year := strings.TrimSpace(in.AcademicYear); year != "" {
		if err := validateAcademicYear(year); err != nil {
			return nil, err
		}
		option.AcademicYear = year
	}
	option.Value = value
	option.ModifiedBy = actorRef(in.ActorID)

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionUpdate, optionEntity, option.ID, in.ActorID,
		fmt.Sprintf("%s %q (%s)", option.Category, option.Value, option.AcademicYear))

	return option, nil
}

// Deactivate soft-deletes an option. Already inactive options deactivate successfully.
func (s *optionServiceImpl) Deactivate(ctx context.Context, id, actorID int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("Invalid option ID")
	}

	if err := s.optionRepo.Deactivate(ctx, id, actorRef(actorID)); err != nil {
		return err
	}

	s.audit.Record(ctx, models.AuditActionDeactivate, optionEntity, id, actorID, "")
	return nil
}

// Resolve matches raw text exactly against the active options of a category.
// Unmatched text is kept as the value with no option id.
func (s *optionServiceImpl) Resolve(ctx context.Context, category models.Category, raw string) (Resolution, error) {
	if raw == "" {
		return Resolution{}, nil
	}

	option, err := s.optionRepo.FindActiveByValue(ctx, category, raw)
	if err != nil {
		if errors.Is(err, apperrors.ErrOptionNotFound) {
			return Resolution{Value: raw}, nil
		}
		return Resolution{}, fmt.Errorf("error resolving %s %q: %w", category, raw, err)
	}

	id := option.ID
	return Resolution{OptionID: &id, Value: option.Value}, nil
}

func actorRef(actorID int64) *int64 {
	if actorID <= 0 {
		return nil
	}
	return &actorID
}
