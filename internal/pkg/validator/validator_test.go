package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)

	for _, invalid := range []string{"10-03-2025", "2025-3-10", "yesterday", ""} {
		_, ok := IsValidDate(invalid)
		assert.False(t, ok, "input %q", invalid)
	}
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("b", []string{"a", "b"}))
	assert.False(t, IsInSlice("c", []string{"a", "b"}))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "device_uid", Message: "device_uid is required"},
		{Field: "card_uid", Message: "card_uid is required"},
	}

	assert.Contains(t, errs.Error(), "device_uid")
	assert.Equal(t, map[string]string{
		"device_uid": "device_uid is required",
		"card_uid":   "card_uid is required",
	}, errs.ToMap())
}
