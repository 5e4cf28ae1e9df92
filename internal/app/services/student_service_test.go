package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

func newTestStudentService() (StudentService, *memStudentRepo, *recordingAudit) {
	repo := newMemStudentRepo()
	options := &staticOptions{byCategory: map[models.Category]map[string]int64{
		models.CategoryProgram:      {"NEET": 5},
		models.CategoryClassTeacher: {"Ms. Rao": 6},
	}}
	audit := &recordingAudit{}
	return NewStudentService(repo, options, audit), repo, audit
}

func TestStudentService_CreateResolvesCategories(t *testing.T) {
	svc, _, audit := newTestStudentService()
	ctx := context.Background()

	student, err := svc.Create(ctx, &dto.StudentRequest{
		Name:         "Anu",
		StudentID:    "S1",
		Program:      "NEET",
		ClassTeacher: "Ms. Rao",
		Hostel:       "Unlisted",
		Stream:       "Bio",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), student.ID)
	require.NotNil(t, student.ProgramOptionID)
	assert.Equal(t, int64(5), *student.ProgramOptionID)
	require.NotNil(t, student.ClassTeacherOptionID)
	assert.Equal(t, int64(6), *student.ClassTeacherOptionID)
	assert.Nil(t, student.HostelOptionID)
	assert.Equal(t, "Unlisted", student.Hostel)
	assert.Equal(t, "Bio", student.Stream)
	require.NotNil(t, student.CreatedBy)
	assert.Equal(t, int64(7), *student.CreatedBy)
	assert.Equal(t, []models.AuditAction{models.AuditActionCreate}, audit.actions)
}

func TestStudentService_CreateDuplicateIsConflict(t *testing.T) {
	svc, _, _ := newTestStudentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.StudentRequest{Name: "Anu", StudentID: "S1"}, 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.StudentRequest{Name: "Other", StudentID: "S1"}, 1)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStudentService_Validation(t *testing.T) {
	svc, _, _ := newTestStudentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.StudentRequest{Name: "Anu", StudentID: "  "}, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(ctx, &dto.StudentRequest{StudentID: "S1"}, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Get(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Update(ctx, -1, &dto.StudentRequest{Name: "Anu", StudentID: "S1"}, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentService_UpdateAndDelete(t *testing.T) {
	svc, repo, audit := newTestStudentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.StudentRequest{Name: "Anu", StudentID: "S1"}, 1)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.StudentRequest{Name: "Anu K", StudentID: "S1", Program: "NEET"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "Anu K", updated.Name)
	require.NotNil(t, updated.ProgramOptionID)
	require.NotNil(t, updated.ModifiedBy)
	assert.Equal(t, int64(2), *updated.ModifiedBy)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anu K", fetched.Name)

	require.NoError(t, svc.Delete(ctx, created.ID, 2))
	assert.Empty(t, repo.students)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID, 2), apperrors.ErrResourceNotFound)

	assert.Equal(t, []models.AuditAction{
		models.AuditActionCreate, models.AuditActionUpdate, models.AuditActionDelete,
	}, audit.actions)
}

func TestStudentService_List(t *testing.T) {
	svc, _, _ := newTestStudentService()
	ctx := context.Background()

	for _, id := range []string{"S1", "S2"} {
		_, err := svc.Create(ctx, &dto.StudentRequest{Name: "n", StudentID: id}, 1)
		require.NoError(t, err)
	}

	students, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "S1", students[0].StudentID)
}
