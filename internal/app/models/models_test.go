package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"ADMIN", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{" Mentor ", RoleMentor, true},
		{"USER", RoleMentor, true},
		{"user", RoleMentor, true},
		{"student", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("class_teacher")
	assert.True(t, ok)
	assert.Equal(t, CategoryClassTeacher, c)

	_, ok = ParseCategory("DORM")
	assert.False(t, ok)
}
