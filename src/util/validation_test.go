package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("user@example"))
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("A"))
	assert.True(t, ValidateName(strings.Repeat("a", 100)))
	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName(strings.Repeat("a", 101)))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("123456"))
	assert.False(t, ValidatePassword("12id5"))
}

func TestValidateHexColor(t *testing.T) {
	assert.True(t, ValidateHexColor("#FF6384"))
	assert.True(t, ValidateHexColor("#607d8b"))
	assert.False(t, ValidateHexColor("FF6384"))
	assert.False(t, ValidateHexColor("#FFF"))
	assert.False(t, ValidateHexColor("#GGGGGG"))
}

func TestValidateMonth(t *testing.T) {
	assert.True(t, ValidateMonth("2025-01"))
	assert.True(t, ValidateMonth("2025-12"))
	assert.False(t, ValidateMonth("2025-13"))
	assert.False(t, ValidateMonth("2025-00"))
	assert.False(t, ValidateMonth("2025-1"))
	assert.False(t, ValidateMonth("25-01"))
	assert.False(t, ValidateMonth("2025/01"))
}
