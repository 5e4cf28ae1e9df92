package models

import "time"

// Student defines the student model based on the 'students' table.
// Categorical fields keep the resolved text value next to the nullable option id it was matched to.
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Anjali R"`
	StudentID   string `json:"student_id" db:"student_id" example:"STU-2024-001"` // Natural key
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	Gender      string `json:"gender" db:"gender"`

	Batch                string `json:"batch" db:"batch"`
	BatchOptionID        *int64 `json:"batch_option_id,omitempty" db:"batch_option_id"`
	ClassTeacher         string `json:"class_teacher" db:"class_teacher"`
	ClassTeacherOptionID *int64 `json:"class_teacher_option_id,omitempty" db:"class_teacher_option_id"`
	Hostel               string `json:"hostel" db:"hostel"`
	HostelOptionID       *int64 `json:"hostel_option_id,omitempty" db:"hostel_option_id"`
	Stream               string `json:"stream" db:"stream"`
	Program              string `json:"program" db:"program"`
	ProgramOptionID      *int64 `json:"program_option_id,omitempty" db:"program_option_id"`

	StudyMaterial string `json:"study_material" db:"study_material"`
	Uniform       string `json:"uniform" db:"uniform"`
	IDCard        string `json:"id_card" db:"id_card"`
	Tab           string `json:"tab" db:"tab"`
	JoinedStatus  string `json:"joined_status" db:"joined_status"`
	Syllabus      string `json:"syllabus" db:"syllabus"`

	PlusTwoPercentage *float64 `json:"plus_two_percentage" db:"plus_two_percentage"`
	NeetScore         *float64 `json:"neet_score" db:"neet_score"`
	FeeDue            *float64 `json:"fee_due" db:"fee_due"`

	Remarks  string `json:"remarks" db:"remarks"`
	Remarks1 string `json:"remarks1" db:"remarks1"`
	Remarks2 string `json:"remarks2" db:"remarks2"`
	Remarks3 string `json:"remarks3" db:"remarks3"`
	Remarks4 string `json:"remarks4" db:"remarks4"`

	Flag1 bool `json:"flag1" db:"flag1"`
	Flag2 bool `json:"flag2" db:"flag2"`
	Flag3 bool `json:"flag3" db:"flag3"`
	Flag4 bool `json:"flag4" db:"flag4"`

	CreatedBy  *int64    `json:"created_by" db:"created_by"`
	ModifiedBy *int64    `json:"modified_by" db:"modified_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ModifiedAt time.Time `json:"modified_at" db:"modified_at"`
}
