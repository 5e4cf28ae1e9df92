package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/studentms/internal/app/models"
)

// Headers with special handling during import
const (
	HeaderStudentID = "STUDENT ID"
	HeaderSerialNo  = "sl_no"
)

// ImportColumn binds one spreadsheet header to the student field it fills
type ImportColumn struct {
	Header string
	Assign func(s *models.Student, raw string) error
}

// ImportColumns is the spreadsheet header vocabulary. Header text is matched exactly.
// The sl_no column is accepted and ignored.
var ImportColumns = []ImportColumn{
	{"NAME", textField(func(s *models.Student) *string { return &s.Name })},
	{HeaderStudentID, textField(func(s *models.Student) *string { return &s.StudentID })},
	{"PHONE NUMBER", textField(func(s *models.Student) *string { return &s.PhoneNumber })},
	{"GENDER", textField(func(s *models.Student) *string { return &s.Gender })},
	{"BATCH", textField(func(s *models.Student) *string { return &s.Batch })},
	{"CLASS TEACHER", textField(func(s *models.Student) *string { return &s.ClassTeacher })},
	{"HOSTEL", textField(func(s *models.Student) *string { return &s.Hostel })},
	{"STREAM", textField(func(s *models.Student) *string { return &s.Stream })},
	{"PROGRAM", textField(func(s *models.Student) *string { return &s.Program })},
	{"Study Material", textField(func(s *models.Student) *string { return &s.StudyMaterial })},
	{"Uniform", textField(func(s *models.Student) *string { return &s.Uniform })},
	{"ID Card", textField(func(s *models.Student) *string { return &s.IDCard })},
	{"Tab", textField(func(s *models.Student) *string { return &s.Tab })},
	{"JOINED", textField(func(s *models.Student) *string { return &s.JoinedStatus })},
	{"Syllabus", textField(func(s *models.Student) *string { return &s.Syllabus })},
	{"Percentage of +2 Marks", numberField("Percentage of +2 Marks", func(s *models.Student) **float64 { return &s.PlusTwoPercentage })},
	{"NEET Score", numberField("NEET Score", func(s *models.Student) **float64 { return &s.NeetScore })},
	{"Remarks", textField(func(s *models.Student) *string { return &s.Remarks })},
	{"Remarks 1", textField(func(s *models.Student) *string { return &s.Remarks1 })},
	{"Remarks 2", textField(func(s *models.Student) *string { return &s.Remarks2 })},
	{"Remarks 3", textField(func(s *models.Student) *string { return &s.Remarks3 })},
	{"Remarks 4", textField(func(s *models.Student) *string { return &s.Remarks4 })},
	{"Fee Due", numberField("Fee Due", func(s *models.Student) **float64 { return &s.FeeDue })},
	{"Flag1", flagField(func(s *models.Student) *bool { return &s.Flag1 })},
	{"Flag2", flagField(func(s *models.Student) *bool { return &s.Flag2 })},
	{"Flag3", flagField(func(s *models.Student) *bool { return &s.Flag3 })},
	{"Flag4", flagField(func(s *models.Student) *bool { return &s.Flag4 })},
}

// rowError is a per-row problem whose message is safe to report back
type rowError struct {
	msg string
}

func (e *rowError) Error() string { return e.msg }

func textField(field func(*models.Student) *string) func(*models.Student, string) error {
	return func(s *models.Student, raw string) error {
		*field(s) = raw
		return nil
	}
}

// numberField parses a numeric cell. Empty cells are NULL.
func numberField(header string, field func(*models.Student) **float64) func(*models.Student, string) error {
	return func(s *models.Student, raw string) error {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			*field(s) = nil
			return nil
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return &rowError{msg: fmt.Sprintf("invalid %s %q", header, raw)}
		}
		*field(s) = &v
		return nil
	}
}

// flagField is true only for the exact text "Yes"
func flagField(field func(*models.Student) *bool) func(*models.Student, string) error {
	return func(s *models.Student, raw string) error {
		*field(s) = raw == "Yes"
		return nil
	}
}
