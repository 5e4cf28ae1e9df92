package models

import "strings"

// Role defines the user role
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMentor Role = "MENTOR"
)

// legacyRoleUser is the pre-rename name of the mentor role
const legacyRoleUser = "USER"

// ParseRole normalizes a role name case-insensitively. USER is accepted as MENTOR.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleMentor), legacyRoleUser:
		return RoleMentor, true
	default:
		return "", false
	}
}

// Category defines a configurable option category
type Category string

const (
	CategoryBatch        Category = "BATCH"
	CategoryClassTeacher Category = "CLASS_TEACHER"
	CategoryHostel       Category = "HOSTEL"
	CategoryProgram      Category = "PROGRAM"
	CategoryStream       Category = "STREAM"
)

// Categories lists every known category
var Categories = []Category{
	CategoryBatch,
	CategoryClassTeacher,
	CategoryHostel,
	CategoryProgram,
	CategoryStream,
}

// ParseCategory normalizes a category name to upper case and checks it is known
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}
