package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/dberrors"
	"github.com/yigit/studentms/internal/pkg/logger"
)

const activeOptionConstraint = "configurable_options_active_key"

var optionColumns = []string{
	"id", "category", "value", "academic_year", "is_active",
	"created_by", "modified_by", "created_at", "modified_at",
}

// ErrActiveOptionExists is returned when a write would create a second active row
// for the same category, value and academic year.
var ErrActiveOptionExists = apperrors.NewConflictError("An active option with this value already exists")

// IOptionRepository defines the interface for configurable option database operations
type IOptionRepository interface {
	ListActive(ctx context.Context, category models.Category) ([]*models.ConfigurableOption, error)
	GetByID(ctx context.Context, id int64) (*models.ConfigurableOption, error)
	FindActive(ctx context.Context, category models.Category, value, academicYear string) (*models.ConfigurableOption, error)
	FindActiveByValue(ctx context.Context, category models.Category, value string) (*models.ConfigurableOption, error)
	Create(ctx context.Context, option *models.ConfigurableOption) error
	Update(ctx context.Context, option *models.ConfigurableOption) error
	Deactivate(ctx context.Context, id int64, modifiedBy *int64) error
}

// OptionRepository handles configurable option database operations
type OptionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOptionRepository creates a new OptionRepository
func NewOptionRepository(db *pgxpool.Pool) *OptionRepository {
	return &OptionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanOption(row pgx.Row) (*models.ConfigurableOption, error) {
	o := &models.ConfigurableOption{}
	err := row.Scan(
		&o.ID, &o.Category, &o.Value, &o.AcademicYear, &o.IsActive,
		&o.CreatedBy, &o.ModifiedBy, &o.CreatedAt, &o.ModifiedAt,
	)
	return o, err
}

// ListActive retrieves the active options of a category in insertion order
func (r *OptionRepository) ListActive(ctx context.Context, category models.Category) ([]*models.ConfigurableOption, error) {
	sql, args, err := r.listActiveQuery(category).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list options SQL")
		return nil, fmt.Errorf("failed to build list options query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("category", string(category)).Msg("Error executing list options query")
		return nil, fmt.Errorf("error querying options: %w", err)
	}
	defer rows.Close()

	options := []*models.ConfigurableOption{}
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning option row")
			return nil, fmt.Errorf("error scanning option row: %w", err)
		}
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating option rows")
		return nil, fmt.Errorf("error iterating option rows: %w", err)
	}

	return options, nil
}

func (r *OptionRepository) listActiveQuery(category models.Category) squirrel.SelectBuilder {
	return r.sb.Select(optionColumns...).
		From("configurable_options").
		Where(squirrel.Eq{"category": category, "is_active": true}).
		OrderBy("id ASC")
}

// GetByID retrieves an option regardless of its active state
func (r *OptionRepository) GetByID(ctx context.Context, id int64) (*models.ConfigurableOption, error) {
	return r.getOne(ctx, r.getByIDQuery(id))
}

// getByIDQuery has no is_active filter so deactivated options stay readable
func (r *OptionRepository) getByIDQuery(id int64) squirrel.SelectBuilder {
	return r.sb.Select(optionColumns...).
		From("configurable_options").
		Where(squirrel.Eq{"id": id}).
		Limit(1)
}

// FindActive retrieves the active option with an exact category, value and academic year
func (r *OptionRepository) FindActive(ctx context.Context, category models.Category, value, academicYear string) (*models.ConfigurableOption, error) {
	return r.getOne(ctx, r.sb.Select(optionColumns...).
		From("configurable_options").
		Where(squirrel.Eq{
			"category":      category,
			"value":         value,
			"academic_year": academicYear,
			"is_active":     true,
		}).
		Limit(1))
}

// FindActiveByValue retrieves the active option matching category and value,
// preferring the latest academic year when several years carry the same value.
func (r *OptionRepository) FindActiveByValue(ctx context.Context, category models.Category, value string) (*models.ConfigurableOption, error) {
	return r.getOne(ctx, r.sb.Select(optionColumns...).
		From("configurable_options").
		Where(squirrel.Eq{"category": category, "value": value, "is_active": true}).
		OrderBy("academic_year DESC", "id DESC").
		Limit(1))
}

func (r *OptionRepository) getOne(ctx context.Context, q squirrel.SelectBuilder) (*models.ConfigurableOption, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get option SQL")
		return nil, fmt.Errorf("failed to build get option query: %w", err)
	}

	o, err := scanOption(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOptionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning option row")
		return nil, fmt.Errorf("error getting option: %w", err)
	}

	return o, nil
}

// Create inserts a new active option
func (r *OptionRepository) Create(ctx context.Context, option *models.ConfigurableOption) error {
	sql, args, err := r.sb.Insert("configurable_options").
		Columns("category", "value", "academic_year", "is_active", "created_by", "modified_by").
		Values(option.Category, option.Value, option.AcademicYear, true, option.CreatedBy, option.ModifiedBy).
		Suffix("RETURNING id, is_active, created_at, modified_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create option SQL")
		return fmt.Errorf("failed to build create option query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&option.ID, &option.IsActive, &option.CreatedAt, &option.ModifiedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, activeOptionConstraint) {
			return ErrActiveOptionExists
		}
		logger.Error().Err(err).Str("category", string(option.Category)).Msg("Error executing create option query")
		return fmt.Errorf("error creating option: %w", err)
	}

	return nil
}

// Update changes value and academic year of an option and stamps modified_by
func (r *OptionRepository) Update(ctx context.Context, option *models.ConfigurableOption) error {
	sql, args, err := r.sb.Update("configurable_options").
		Set("value", option.Value).
		Set("academic_year", option.AcademicYear).
		Set("modified_by", option.ModifiedBy).
		Set("modified_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": option.ID}).
		Suffix("RETURNING " + joinColumns(optionColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update option SQL")
		return fmt.Errorf("failed to build update option query: %w", err)
	}

	updated, err := scanOption(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrOptionNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, activeOptionConstraint) {
			return ErrActiveOptionExists
		}
		logger.Error().Err(err).Int64("optionID", option.ID).Msg("Error executing update option query")
		return fmt.Errorf("error updating option: %w", err)
	}

	*option = *updated
	return nil
}

// Deactivate marks an option inactive. Deactivating an inactive option succeeds;
// only an unknown id is reported as not found. A nil modifiedBy stores NULL.
func (r *OptionRepository) Deactivate(ctx context.Context, id int64, modifiedBy *int64) error {
	sql, args, err := r.deactivateQuery(id, modifiedBy).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building deactivate option SQL")
		return fmt.Errorf("failed to build deactivate option query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("optionID", id).Msg("Error executing deactivate option query")
		return fmt.Errorf("error deactivating option: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOptionNotFound
	}

	return nil
}

func (r *OptionRepository) deactivateQuery(id int64, modifiedBy *int64) squirrel.UpdateBuilder {
	return r.sb.Update("configurable_options").
		Set("is_active", false).
		Set("modified_by", modifiedBy).
		Set("modified_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})
}
