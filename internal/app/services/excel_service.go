package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/logger"
	"github.com/yigit/studentms/internal/pkg/spreadsheet"
)

// ExportSheetName is the worksheet name of an export
const ExportSheetName = "Students"

// ExcelService imports students from and exports them to spreadsheets
type ExcelService interface {
	Import(ctx context.Context, r io.Reader, actorID int64) (*dto.ImportReport, error)
	Export(ctx context.Context, w io.Writer) error
}

type excelServiceImpl struct {
	studentRepo repositories.IStudentRepository
	options     OptionService
	audit       AuditService
	maxRows     int
}

// NewExcelService creates a new excel service. maxRows bounds the data rows of one upload.
func NewExcelService(studentRepo repositories.IStudentRepository, options OptionService, audit AuditService, maxRows int) ExcelService {
	return &excelServiceImpl{
		studentRepo: studentRepo,
		options:     options,
		audit:       audit,
		maxRows:     maxRows,
	}
}

// Import reads the first sheet and inserts every row whose student ID is not stored yet.
// Rows are processed in sheet order. A failing row is reported and does not stop the import.
// Existing students are skipped, never overwritten.
func (s *excelServiceImpl) Import(ctx context.Context, r io.Reader, actorID int64) (*dto.ImportReport, error) {
	sheet, err := spreadsheet.ReadFirstSheet(r, s.maxRows)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrTooManyRows) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Spreadsheet has more than %d rows", s.maxRows))
		}
		logger.Warn().Err(err).Msg("Rejected unreadable spreadsheet")
		return nil, apperrors.NewValidationError("Uploaded file is not a readable .xlsx spreadsheet")
	}

	if !hasHeader(sheet.Header, HeaderStudentID) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Missing required column %q", HeaderStudentID))
	}

	report := &dto.ImportReport{Errors: []dto.ImportRowError{}}
	for _, row := range sheet.Rows {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Int("attempted", report.Attempted).Msg("Import cancelled")
			return report, fmt.Errorf("import cancelled after %d rows: %w", report.Attempted, err)
		}

		report.Attempted++
		studentID := row.Get(HeaderStudentID)

		inserted, err := s.importRow(ctx, row, actorID)
		if err != nil {
			var rowErr *rowError
			if errors.As(err, &rowErr) {
				report.AddError(row.Number, studentID, rowErr.msg)
			} else {
				logger.Error().Err(err).Int("row", row.Number).Str("studentID", studentID).Msg("Error importing row")
				report.AddError(row.Number, studentID, "failed to store row")
			}
			continue
		}

		if inserted {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	logger.Info().
		Int("attempted", report.Attempted).
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Int64("actorID", actorID).
		Msg("Student import finished")

	s.audit.Record(ctx, models.AuditActionImport, studentEntity, 0, actorID,
		fmt.Sprintf("attempted=%d inserted=%d skipped=%d failed=%d",
			report.Attempted, report.Inserted, report.Skipped, report.Failed))

	return report, nil
}

func (s *excelServiceImpl) importRow(ctx context.Context, row spreadsheet.Row, actorID int64) (bool, error) {
	student, err := studentFromRow(row)
	if err != nil {
		return false, err
	}

	if err := resolveStudentCategories(ctx, s.options, student); err != nil {
		return false, err
	}

	student.CreatedBy = actorRef(actorID)
	student.ModifiedBy = actorRef(actorID)

	return s.studentRepo.InsertIfAbsent(ctx, student)
}

// studentFromRow fills a student from a sheet row through ImportColumns
func studentFromRow(row spreadsheet.Row) (*models.Student, error) {
	student := &models.Student{}
	for _, col := range ImportColumns {
		if err := col.Assign(student, row.Get(col.Header)); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(student.StudentID) == "" {
		return nil, &rowError{msg: HeaderStudentID + " is required"}
	}
	return student, nil
}

func hasHeader(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}

// Export writes every stored student to a single "Students" sheet.
// The header row holds the stored column names, so an empty table yields a header-only workbook.
func (s *excelServiceImpl) Export(ctx context.Context, w io.Writer) error {
	produce := func(emit func([]interface{}) error) error {
		return s.studentRepo.ForEach(ctx, func(student *models.Student) error {
			return emit(repositories.StudentRecord(student))
		})
	}

	if err := spreadsheet.Write(w, ExportSheetName, repositories.StudentColumns, produce); err != nil {
		return fmt.Errorf("error exporting students: %w", err)
	}
	return nil
}
