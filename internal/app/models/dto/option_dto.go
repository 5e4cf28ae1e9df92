package dto

import "github.com/yigit/studentms/internal/app/models"

// AddOptionRequest represents a request to add a configurable option
type AddOptionRequest struct {
	Category     string `json:"category" binding:"required"`
	Value        string `json:"value" binding:"required,max=255"`
	AcademicYear string `json:"academicYear,omitempty" binding:"omitempty,academic_year" example:"2024-2025"`
}

// UpdateOptionRequest represents a request to update a configurable option
type UpdateOptionRequest struct {
	Value        string `json:"value" binding:"required,max=255"`
	AcademicYear string `json:"academicYear,omitempty" binding:"omitempty,academic_year" example:"2024-2025"`
}

// CatalogRequest is the body for creating or updating a batch, hostel or program
type CatalogRequest struct {
	Value        string `json:"value" binding:"required,max=255"`
	AcademicYear string `json:"academicYear,omitempty" binding:"omitempty,academic_year" example:"2024-2025"`
}

// AddOptionResponse is returned by the add operation. Outcome tells whether a new row was created.
type AddOptionResponse struct {
	Outcome string                     `json:"outcome" example:"ADDED"`
	Option  *models.ConfigurableOption `json:"option"`
}
