package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var headerNoise = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeader lowercases a header cell and strips everything but letters and digits,
// so "OT Hours", "ot_hours" and "OTHours" compare equal.
func NormalizeHeader(s string) string {
	return headerNoise.ReplaceAllString(strings.ToLower(s), "")
}

// ValidateHeader compares a CSV header row against the expected positional columns.
// Extra trailing columns are allowed; missing or renamed columns are reported per position.
func ValidateHeader(expected, got []string) error {
	var errs ValidationErrors

	for i, want := range expected {
		field := fmt.Sprintf("column[%d]", i)
		if i >= len(got) || IsEmpty(got[i]) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("missing, expected %q", want),
			})
			continue
		}
		if NormalizeHeader(got[i]) != NormalizeHeader(want) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("got %q, expected %q", got[i], want),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseLimit parses an optional positive row limit from a query value.
// An empty value yields fallback.
func ParseLimit(field, value string, fallback, max int) (int, error) {
	if IsEmpty(value) {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > max {
		return 0, ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("%s must be a number between 1 and %d", field, max),
		}}
	}
	return n, nil
}
