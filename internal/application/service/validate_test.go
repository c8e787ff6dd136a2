// internal/application/service/validate_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTableType(t *testing.T) {
	for _, table := range []string{"a", "b", "c"} {
		assert.True(t, validTableType(table), "table %q should be valid", table)
	}
	for _, table := range []string{"", "d", "A", "abc", "1"} {
		assert.False(t, validTableType(table), "table %q should be invalid", table)
	}
}

func TestValidateDate(t *testing.T) {
	// Empty means "current", which is always acceptable
	assert.Empty(t, validateDate(""))
	assert.Empty(t, validateDate("2024-01-15"))
	// Syntactic check only: a nonsense calendar date still passes
	assert.Empty(t, validateDate("2024-13-45"))

	for _, date := range []string{"01-15-2024", "2024/01/15", "15.01.2024", "2024-1-15", "2024-01-15 "} {
		assert.Equal(t,
			"Invalid date format: '"+date+"'. Expected YYYY-MM-DD (e.g., 2024-01-15)",
			validateDate(date))
	}
}

func TestValidCount(t *testing.T) {
	assert.True(t, validCount(1))
	assert.True(t, validCount(255))
	assert.False(t, validCount(0))
	assert.False(t, validCount(256))
	assert.False(t, validCount(-5))
}
