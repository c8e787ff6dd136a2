// Package service internal/application/service/validate.go
package service

import (
	"fmt"
	"regexp"
)

// ISO 8601 date format: YYYY-MM-DD
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	invalidTableMsg = "Invalid table type. Use 'a', 'b', or 'c'."
	invalidCountMsg = "Count must be between 1 and 255."
)

// validTableType reports whether table is one of the NBP table types.
// Callers lowercase the value first.
func validTableType(table string) bool {
	switch table {
	case "a", "b", "c":
		return true
	}
	return false
}

// validateDate returns an error message for a malformed date, or an empty
// string when the date is empty or syntactically valid. Only the YYYY-MM-DD
// shape is checked; calendar validity is left to the upstream API.
func validateDate(date string) string {
	if date == "" {
		return ""
	}

	if !datePattern.MatchString(date) {
		return fmt.Sprintf("Invalid date format: '%s'. Expected YYYY-MM-DD (e.g., 2024-01-15)", date)
	}

	return ""
}

// validCount reports whether count is within the range the NBP last-N
// endpoints accept.
func validCount(count int) bool {
	return count >= 1 && count <= 255
}
