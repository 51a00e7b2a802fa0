package util

import (
	"learning_assistant_backend/internal/analysis"
	"strconv"
	"strings"
)

// NormalizeStudentID trims and upper-cases a student identifier.
func NormalizeStudentID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseOptionalFloat returns nil for an empty value.
func ParseOptionalFloat(field, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &analysis.InvalidInputError{Field: field, Reason: "must be a number"}
	}
	return &v, nil
}
