// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"math"
	"strconv"
	"strings"
)

// ParseMode selects how the number query parameter is interpreted.
type ParseMode string

const (
	// ParseLenient accepts any finite numeric string and keeps its leading
	// integer part, so "10.9" classifies 10.
	ParseLenient ParseMode = "lenient"
	// ParseStrict accepts only base-10 integers with an optional sign.
	ParseStrict ParseMode = "strict"
)

// ClassifyRequest holds the raw query input of the classify endpoint.
//
// @Description Query parameters for number classification
type ClassifyRequest struct {
	// Raw is the untouched value of the number parameter.
	Raw string
	// Present is false when the parameter was absent from the query.
	Present bool
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidNumber is returned when the number parameter is missing or not numeric.
	ErrInvalidNumber = &ValidationError{
		Field:   "number",
		Message: "must be a valid integer",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Parse validates the request and returns the integer to classify.
func (r ClassifyRequest) Parse(mode ParseMode) (int, error) {
	if !r.Present {
		return 0, ErrInvalidNumber
	}
	return ParseNumber(r.Raw, mode)
}

// ParseNumber converts a raw query value into an int according to mode.
func ParseNumber(raw string, mode ParseMode) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidNumber
	}

	if mode == ParseStrict {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, ErrInvalidNumber
		}
		return n, nil
	}

	if hasHexPrefix(s) {
		return 0, ErrInvalidNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidNumber
	}

	prefix := integerPrefix(s)
	if prefix == "" {
		return 0, ErrInvalidNumber
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// hasHexPrefix reports whether s, after an optional sign, starts with 0x or 0X.
// ParseFloat would otherwise accept hexadecimal floats such as "0x1p4".
func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// integerPrefix returns the optional sign and leading decimal digits of s,
// or "" when s does not start with a digit after its sign.
func integerPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}
