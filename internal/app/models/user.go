package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id" example:"1"`                                // Unique identifier for the user
	Username  string     `json:"username" db:"username" example:"admin"`                // Unique login name
	Password  string     `json:"-" db:"password"`                                       // Hashed password (excluded from JSON)
	Role      Role       `json:"role" db:"role" example:"ADMIN"`                        // ADMIN or MENTOR
	Email     *string    `json:"email,omitempty" db:"email" example:"mentor@school.in"` // Optional contact email
	LastLogin *time.Time `json:"last_login,omitempty" db:"last_login"`                  // Timestamp of the last successful login
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
