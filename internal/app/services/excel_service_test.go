package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/spreadsheet"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var rosterHeader = []interface{}{"sl_no", "NAME", "STUDENT ID", "BATCH", "HOSTEL", "NEET Score", "Fee Due", "Flag1", "Flag2", "JOINED"}

func newTestExcelService(repo *memStudentRepo, maxRows int) (ExcelService, *recordingAudit) {
	options := &staticOptions{byCategory: map[models.Category]map[string]int64{
		models.CategoryBatch:  {"2024-A": 1},
		models.CategoryHostel: {"North": 2},
	}}
	audit := &recordingAudit{}
	return NewExcelService(repo, options, audit, maxRows), audit
}

func TestExcelService_ImportInsertsAndSkipsDuplicates(t *testing.T) {
	repo := newMemStudentRepo()
	svc, audit := newTestExcelService(repo, 0)

	buf := workbook(t,
		rosterHeader,
		[]interface{}{1, "Anu", "S1", "2024-A", "North", 650, 1200.5, "Yes", "yes", "Joined"},
		[]interface{}{2, "Biju", "S2", "2023-B", "South", "", "", "No", "Yes", ""},
		[]interface{}{3, "Anu again", "S1", "2024-A", "North", 600, "", "", "", ""},
	)

	report, err := svc.Import(context.Background(), buf, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Errors)

	anu := repo.students["S1"]
	require.NotNil(t, anu)
	assert.Equal(t, "Anu", anu.Name)
	require.NotNil(t, anu.BatchOptionID)
	assert.Equal(t, int64(1), *anu.BatchOptionID)
	require.NotNil(t, anu.HostelOptionID)
	assert.Equal(t, int64(2), *anu.HostelOptionID)
	require.NotNil(t, anu.NeetScore)
	assert.Equal(t, 650.0, *anu.NeetScore)
	require.NotNil(t, anu.FeeDue)
	assert.Equal(t, 1200.5, *anu.FeeDue)
	assert.True(t, anu.Flag1)
	assert.False(t, anu.Flag2, "flags are true only for the exact text Yes")
	assert.Equal(t, "Joined", anu.JoinedStatus)
	require.NotNil(t, anu.CreatedBy)
	assert.Equal(t, int64(42), *anu.CreatedBy)

	biju := repo.students["S2"]
	require.NotNil(t, biju)
	assert.Equal(t, "2023-B", biju.Batch)
	assert.Nil(t, biju.BatchOptionID)
	assert.Equal(t, "South", biju.Hostel)
	assert.Nil(t, biju.HostelOptionID)
	assert.Nil(t, biju.NeetScore)
	assert.Nil(t, biju.FeeDue)
	assert.False(t, biju.Flag1)
	assert.True(t, biju.Flag2)

	assert.Equal(t, []models.AuditAction{models.AuditActionImport}, audit.actions)
}

func TestExcelService_ImportIsIdempotent(t *testing.T) {
	repo := newMemStudentRepo()
	svc, _ := newTestExcelService(repo, 0)
	rows := [][]interface{}{
		rosterHeader,
		{1, "Anu", "S1", "", "", "", "", "", "", ""},
		{2, "Biju", "S2", "", "", "", "", "", "", ""},
	}

	first, err := svc.Import(context.Background(), workbook(t, rows...), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := svc.Import(context.Background(), workbook(t, rows...), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, repo.students, 2)
}

func TestExcelService_ImportReportsRowFailures(t *testing.T) {
	repo := newMemStudentRepo()
	repo.failOn["S4"] = errors.New("connection reset by peer")
	svc, _ := newTestExcelService(repo, 0)

	buf := workbook(t,
		rosterHeader,
		[]interface{}{1, "Anu", "S1", "", "", "abc", "", "", "", ""},
		[]interface{}{2, "No ID", "", "", "", "", "", "", "", ""},
		[]interface{}{3, "Chandra", "S3", "", "", 512, "", "", "", ""},
		[]interface{}{4, "Devi", "S4", "", "", "", "", "", "", ""},
	)

	report, err := svc.Import(context.Background(), buf, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Attempted)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 3, report.Failed)
	require.Len(t, report.Errors, 3)

	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Equal(t, "S1", report.Errors[0].StudentID)
	assert.Contains(t, report.Errors[0].Message, "NEET Score")

	assert.Equal(t, 3, report.Errors[1].Row)
	assert.Equal(t, "STUDENT ID is required", report.Errors[1].Message)

	assert.Equal(t, 5, report.Errors[2].Row)
	assert.Equal(t, "failed to store row", report.Errors[2].Message)
	assert.NotContains(t, report.Errors[2].Message, "connection")
}

func TestExcelService_ImportResolutionFailureIsRowFailure(t *testing.T) {
	repo := newMemStudentRepo()
	svc := NewExcelService(repo, &staticOptions{err: errors.New("db down")}, &recordingAudit{}, 0)

	buf := workbook(t, rosterHeader, []interface{}{1, "Anu", "S1", "2024-A", "", "", "", "", "", ""})

	report, err := svc.Import(context.Background(), buf, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, repo.students)
}

func TestExcelService_ImportRejectsBadInput(t *testing.T) {
	svc, _ := newTestExcelService(newMemStudentRepo(), 2)
	ctx := context.Background()

	t.Run("not a workbook", func(t *testing.T) {
		_, err := svc.Import(ctx, bytes.NewBufferString("name,student id\n"), 1)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing student id column", func(t *testing.T) {
		_, err := svc.Import(ctx, workbook(t, []interface{}{"NAME"}, []interface{}{"Anu"}), 1)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		msg, _ := apperrors.PublicMessage(err)
		assert.Contains(t, msg, "STUDENT ID")
	})

	t.Run("too many rows", func(t *testing.T) {
		_, err := svc.Import(ctx, workbook(t,
			[]interface{}{"STUDENT ID"},
			[]interface{}{"S1"}, []interface{}{"S2"}, []interface{}{"S3"},
		), 1)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestExcelService_ImportStopsWhenCancelled(t *testing.T) {
	repo := newMemStudentRepo()
	svc, _ := newTestExcelService(repo, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := workbook(t, rosterHeader, []interface{}{1, "Anu", "S1", "", "", "", "", "", "", ""})

	report, err := svc.Import(ctx, buf, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Attempted)
	assert.Empty(t, repo.students)
}

func TestExcelService_ExportEmptyIsHeaderOnly(t *testing.T) {
	svc, _ := newTestExcelService(newMemStudentRepo(), 0)

	var out bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &out))

	sheet, err := spreadsheet.ReadFirstSheet(&out, 0)
	require.NoError(t, err)
	assert.Equal(t, ExportSheetName, sheet.Name)
	assert.Equal(t, repositories.StudentColumns, sheet.Header)
	assert.Empty(t, sheet.Rows)
}

func TestExcelService_ExportWritesStoredRows(t *testing.T) {
	repo := newMemStudentRepo()
	neet := 650.0
	_, err := repo.InsertIfAbsent(context.Background(), &models.Student{Name: "Anu", StudentID: "S1", NeetScore: &neet})
	require.NoError(t, err)
	_, err = repo.InsertIfAbsent(context.Background(), &models.Student{Name: "Biju", StudentID: "S2"})
	require.NoError(t, err)
	svc, _ := newTestExcelService(repo, 0)

	var out bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &out))

	sheet, err := spreadsheet.ReadFirstSheet(&out, 0)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, "1", sheet.Rows[0].Get("id"))
	assert.Equal(t, "S1", sheet.Rows[0].Get("student_id"))
	assert.Equal(t, "Anu", sheet.Rows[0].Get("name"))
	assert.Equal(t, "650", sheet.Rows[0].Get("neet_score"))
	assert.Equal(t, "S2", sheet.Rows[1].Get("student_id"))
	assert.Equal(t, "", sheet.Rows[1].Get("neet_score"))
}

func TestImportColumnsCoverHeaderVocabulary(t *testing.T) {
	seen := map[string]bool{}
	for _, col := range ImportColumns {
		assert.False(t, seen[col.Header], "duplicate header %q", col.Header)
		seen[col.Header] = true
	}
	for _, h := range []string{"NAME", "STUDENT ID", "PHONE NUMBER", "GENDER", "BATCH", "CLASS TEACHER",
		"HOSTEL", "STREAM", "PROGRAM", "Percentage of +2 Marks", "NEET Score", "Fee Due", "Flag4"} {
		assert.True(t, seen[h], "missing header %q", h)
	}
}
