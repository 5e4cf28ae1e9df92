package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/dberrors"
	"github.com/yigit/studentms/internal/pkg/logger"
)

const studentIDConstraint = "students_student_id_key"

// studentWritableColumns are the columns set on insert, in the order of studentWritableValues
var studentWritableColumns = []string{
	"name", "student_id", "phone_number", "gender",
	"batch", "batch_option_id", "class_teacher", "class_teacher_option_id",
	"hostel", "hostel_option_id", "stream", "program", "program_option_id",
	"study_material", "uniform", "id_card", "tab", "joined_status", "syllabus",
	"plus_two_percentage", "neet_score",
	"remarks", "remarks1", "remarks2", "remarks3", "remarks4",
	"fee_due", "flag1", "flag2", "flag3", "flag4",
	"created_by", "modified_by",
}

// StudentColumns lists every stored student column in table order
var StudentColumns = append(append([]string{"id"}, studentWritableColumns...), "created_at", "modified_at")

func studentWritableValues(s *models.Student) []interface{} {
	return []interface{}{
		s.Name, s.StudentID, s.PhoneNumber, s.Gender,
		s.Batch, s.BatchOptionID, s.ClassTeacher, s.ClassTeacherOptionID,
		s.Hostel, s.HostelOptionID, s.Stream, s.Program, s.ProgramOptionID,
		s.StudyMaterial, s.Uniform, s.IDCard, s.Tab, s.JoinedStatus, s.Syllabus,
		s.PlusTwoPercentage, s.NeetScore,
		s.Remarks, s.Remarks1, s.Remarks2, s.Remarks3, s.Remarks4,
		s.FeeDue, s.Flag1, s.Flag2, s.Flag3, s.Flag4,
		s.CreatedBy, s.ModifiedBy,
	}
}

func studentScanTargets(s *models.Student) []interface{} {
	return []interface{}{
		&s.ID,
		&s.Name, &s.StudentID, &s.PhoneNumber, &s.Gender,
		&s.Batch, &s.BatchOptionID, &s.ClassTeacher, &s.ClassTeacherOptionID,
		&s.Hostel, &s.HostelOptionID, &s.Stream, &s.Program, &s.ProgramOptionID,
		&s.StudyMaterial, &s.Uniform, &s.IDCard, &s.Tab, &s.JoinedStatus, &s.Syllabus,
		&s.PlusTwoPercentage, &s.NeetScore,
		&s.Remarks, &s.Remarks1, &s.Remarks2, &s.Remarks3, &s.Remarks4,
		&s.FeeDue, &s.Flag1, &s.Flag2, &s.Flag3, &s.Flag4,
		&s.CreatedBy, &s.ModifiedBy,
		&s.CreatedAt, &s.ModifiedAt,
	}
}

// StudentRecord returns the stored values of a student in StudentColumns order.
// NULL columns are nil and timestamps are RFC 3339 text.
func StudentRecord(s *models.Student) []interface{} {
	record := make([]interface{}, 0, len(StudentColumns))
	record = append(record, s.ID)
	for _, v := range studentWritableValues(s) {
		record = append(record, derefValue(v))
	}
	return append(record, s.CreatedAt.Format(time.RFC3339), s.ModifiedAt.Format(time.RFC3339))
}

func derefValue(v interface{}) interface{} {
	switch p := v.(type) {
	case *int64:
		if p == nil {
			return nil
		}
		return *p
	case *float64:
		if p == nil {
			return nil
		}
		return *p
	default:
		return v
	}
}

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	InsertIfAbsent(ctx context.Context, student *models.Student) (bool, error)
	ForEach(ctx context.Context, fn func(*models.Student) error) error
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *StudentRepository) selectAll() squirrel.SelectBuilder {
	return r.sb.Select(StudentColumns...).From("students").OrderBy("id ASC")
}

// List retrieves all students ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	err := r.ForEach(ctx, func(s *models.Student) error {
		students = append(students, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// ForEach streams every student in id order to fn. Each call runs a fresh query,
// so the sequence can be restarted. An error from fn stops iteration and is returned.
func (r *StudentRepository) ForEach(ctx context.Context, fn func(*models.Student) error) error {
	sql, args, err := r.selectAll().ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(studentScanTargets(student)...); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return fmt.Errorf("error scanning student row: %w", err)
		}
		if err := fn(student); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return fmt.Errorf("error iterating student rows: %w", err)
	}

	return nil
}

// GetByID retrieves a student by row id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(StudentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(studentScanTargets(student)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentRowID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) buildInsert(student *models.Student, skipConflicts bool) (string, []interface{}, error) {
	q := r.sb.Insert("students").
		Columns(studentWritableColumns...).
		Values(studentWritableValues(student)...)
	if skipConflicts {
		q = q.Suffix("ON CONFLICT (student_id) DO NOTHING RETURNING id, created_at, modified_at")
	} else {
		q = q.Suffix("RETURNING id, created_at, modified_at")
	}
	return q.ToSql()
}

// Create inserts a student. A duplicate student_id is a conflict.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.buildInsert(student, false)
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.ModifiedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentIDConstraint) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// InsertIfAbsent inserts a student unless its student_id is already stored.
// It reports whether a row was inserted; existing rows are never modified.
func (r *StudentRepository) InsertIfAbsent(ctx context.Context, student *models.Student) (bool, error) {
	sql, args, err := r.buildInsert(student, true)
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert-if-absent student SQL")
		return false, fmt.Errorf("failed to build insert student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing insert-if-absent student query")
		return false, fmt.Errorf("error inserting student: %w", err)
	}

	return true, nil
}

// Update replaces every writable field of the student identified by student.ID
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	values := studentWritableValues(student)
	set := make(map[string]interface{}, len(studentWritableColumns))
	for i, col := range studentWritableColumns {
		if col == "created_by" {
			continue
		}
		set[col] = values[i]
	}
	set["modified_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	sql, args, err := r.sb.Update("students").
		SetMap(set).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING created_by, created_at, modified_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.CreatedBy, &student.CreatedAt, &student.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, studentIDConstraint) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		logger.Error().Err(err).Int64("studentRowID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes a student row
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentRowID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
