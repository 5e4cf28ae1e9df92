package models

import "time"

// ConfigurableOption defines a category-scoped reference value from the 'configurable_options' table.
// Options are never deleted; deactivation flips IsActive.
type ConfigurableOption struct {
	ID           int64     `json:"id" db:"id" example:"3"`
	Category     Category  `json:"category" db:"category" example:"HOSTEL"`
	Value        string    `json:"value" db:"value" example:"Boys Hostel A"`
	AcademicYear string    `json:"academic_year" db:"academic_year" example:"2024-2025"`
	IsActive     bool      `json:"is_active" db:"is_active" example:"true"`
	CreatedBy    *int64    `json:"created_by,omitempty" db:"created_by"`
	ModifiedBy   *int64    `json:"modified_by,omitempty" db:"modified_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	ModifiedAt   time.Time `json:"modified_at" db:"modified_at"`
}
