package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidAcademicYear(t *testing.T) {
	assert.True(t, ValidAcademicYear("2024-2025"))
	assert.False(t, ValidAcademicYear("2024-2026"))
	assert.False(t, ValidAcademicYear("2024/2025"))
	assert.False(t, ValidAcademicYear("24-25"))
	assert.False(t, ValidAcademicYear(""))
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("abc").WithMinLength(3).WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("x1").WithPattern(CompiledPatterns.AcademicYear).Validate())
}

func TestRegisterRules(t *testing.T) {
	require.NoError(t, RegisterRules())
	require.NoError(t, RegisterRules())

	type body struct {
		Year string `binding:"omitempty,academic_year"`
	}
	v := binding.Validator.Engine().(*validator.Validate)

	assert.NoError(t, v.Struct(body{Year: "2023-2024"}))
	assert.NoError(t, v.Struct(body{}))
	assert.Error(t, v.Struct(body{Year: "2023"}))
}
