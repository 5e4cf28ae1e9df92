package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

const studentEntity = "student"

// StudentService handles student CRUD
type StudentService interface {
	List(ctx context.Context) ([]*models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req *dto.StudentRequest, actorID int64) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.StudentRequest, actorID int64) (*models.Student, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	options     OptionService
	audit       AuditService
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.IStudentRepository, options OptionService, audit AuditService) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		options:     options,
		audit:       audit,
	}
}

// resolveStudentCategories matches the categorical text fields of a student against the registry
// and stores both the resolved value and the option id.
func resolveStudentCategories(ctx context.Context, options OptionService, s *models.Student) error {
	fields := []struct {
		category models.Category
		value    *string
		optionID **int64
	}{
		{models.CategoryBatch, &s.Batch, &s.BatchOptionID},
		{models.CategoryClassTeacher, &s.ClassTeacher, &s.ClassTeacherOptionID},
		{models.CategoryHostel, &s.Hostel, &s.HostelOptionID},
		{models.CategoryProgram, &s.Program, &s.ProgramOptionID},
	}

	for _, f := range fields {
		res, err := options.Resolve(ctx, f.category, *f.value)
		if err != nil {
			return err
		}
		*f.value = res.Value
		*f.optionID = res.OptionID
	}
	return nil
}

func validateStudent(s *models.Student) error {
	if strings.TrimSpace(s.StudentID) == "" {
		return apperrors.NewValidationError("Student ID is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return apperrors.NewValidationError("Name is required")
	}
	return nil
}

// List returns every student
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// Get returns a student by row id
func (s *studentServiceImpl) Get(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid student ID")
	}
	return s.studentRepo.GetByID(ctx, id)
}

// Create stores a new student. A duplicate student_id is a conflict.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.StudentRequest, actorID int64) (*models.Student, error) {
	student := req.ToModel()
	if err := validateStudent(student); err != nil {
		return nil, err
	}
	if err := resolveStudentCategories(ctx, s.options, student); err != nil {
		return nil, err
	}

	student.CreatedBy = actorRef(actorID)
	student.ModifiedBy = actorRef(actorID)

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionCreate, studentEntity, student.ID, actorID, student.StudentID)
	return student, nil
}

// Update replaces all writable fields of a student
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.StudentRequest, actorID int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid student ID")
	}

	student := req.ToModel()
	student.ID = id
	if err := validateStudent(student); err != nil {
		return nil, err
	}
	if err := resolveStudentCategories(ctx, s.options, student); err != nil {
		return nil, err
	}
	student.ModifiedBy = actorRef(actorID)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionUpdate, studentEntity, student.ID, actorID, student.StudentID)
	return student, nil
}

// Delete removes a student
func (s *studentServiceImpl) Delete(ctx context.Context, id, actorID int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("Invalid student ID")
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, models.AuditActionDelete, studentEntity, id, actorID, "")
	return nil
}
