package dto

// ImportRowError describes one spreadsheet row that could not be imported
type ImportRowError struct {
	Row       int    `json:"row" example:"4"`
	StudentID string `json:"studentId,omitempty" example:"STU-2024-003"`
	Message   string `json:"message" example:"invalid NEET Score \"abc\""`
}

// ImportReport summarizes a spreadsheet import
type ImportReport struct {
	Attempted int              `json:"attempted"`
	Inserted  int              `json:"inserted"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors"`
}

// AddError records a failed row
func (r *ImportReport) AddError(row int, studentID, message string) {
	r.Failed++
	r.Errors = append(r.Errors, ImportRowError{Row: row, StudentID: studentID, Message: message})
}
