package dto

import "github.com/yigit/studentms/internal/app/models"

// StudentRequest is the full writable field set of a student.
// Categorical fields are free text and are resolved against the configurable options.
type StudentRequest struct {
	Name              string   `json:"name" binding:"required"`
	StudentID         string   `json:"student_id" binding:"required,max=64"`
	PhoneNumber       string   `json:"phone_number"`
	Gender            string   `json:"gender"`
	Batch             string   `json:"batch"`
	ClassTeacher      string   `json:"class_teacher"`
	Hostel            string   `json:"hostel"`
	Stream            string   `json:"stream"`
	Program           string   `json:"program"`
	StudyMaterial     string   `json:"study_material"`
	Uniform           string   `json:"uniform"`
	IDCard            string   `json:"id_card"`
	Tab               string   `json:"tab"`
	JoinedStatus      string   `json:"joined_status"`
	Syllabus          string   `json:"syllabus"`
	PlusTwoPercentage *float64 `json:"plus_two_percentage"`
	NeetScore         *float64 `json:"neet_score"`
	FeeDue            *float64 `json:"fee_due"`
	Remarks           string   `json:"remarks"`
	Remarks1          string   `json:"remarks1"`
	Remarks2          string   `json:"remarks2"`
	Remarks3          string   `json:"remarks3"`
	Remarks4          string   `json:"remarks4"`
	Flag1             bool     `json:"flag1"`
	Flag2             bool     `json:"flag2"`
	Flag3             bool     `json:"flag3"`
	Flag4             bool     `json:"flag4"`
}

// ToModel copies the request into a student record without categorical resolution
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:              r.Name,
		StudentID:         r.StudentID,
		PhoneNumber:       r.PhoneNumber,
		Gender:            r.Gender,
		Batch:             r.Batch,
		ClassTeacher:      r.ClassTeacher,
		Hostel:            r.Hostel,
		Stream:            r.Stream,
		Program:           r.Program,
		StudyMaterial:     r.StudyMaterial,
		Uniform:           r.Uniform,
		IDCard:            r.IDCard,
		Tab:               r.Tab,
		JoinedStatus:      r.JoinedStatus,
		Syllabus:          r.Syllabus,
		PlusTwoPercentage: r.PlusTwoPercentage,
		NeetScore:         r.NeetScore,
		FeeDue:            r.FeeDue,
		Remarks:           r.Remarks,
		Remarks1:          r.Remarks1,
		Remarks2:          r.Remarks2,
		Remarks3:          r.Remarks3,
		Remarks4:          r.Remarks4,
		Flag1:             r.Flag1,
		Flag2:             r.Flag2,
		Flag3:             r.Flag3,
		Flag4:             r.Flag4,
	}
}
