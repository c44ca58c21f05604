package dto

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		mode          ParseMode
		expected      int
		expectedError bool
	}{
		{name: "plain integer", raw: "371", mode: ParseLenient, expected: 371},
		{name: "negative integer", raw: "-17", mode: ParseLenient, expected: -17},
		{name: "explicit plus sign", raw: "+8", mode: ParseLenient, expected: 8},
		{name: "surrounding whitespace", raw: "  28 ", mode: ParseLenient, expected: 28},
		{name: "zero", raw: "0", mode: ParseLenient, expected: 0},
		{name: "decimal is truncated", raw: "10.9", mode: ParseLenient, expected: 10},
		{name: "negative decimal is truncated toward zero", raw: "-3.7", mode: ParseLenient, expected: -3},
		{name: "exponent keeps integer prefix", raw: "1e3", mode: ParseLenient, expected: 1},
		{name: "empty", raw: "", mode: ParseLenient, expectedError: true},
		{name: "whitespace only", raw: "   ", mode: ParseLenient, expectedError: true},
		{name: "letters", raw: "abc", mode: ParseLenient, expectedError: true},
		{name: "trailing garbage", raw: "42abc", mode: ParseLenient, expectedError: true},
		{name: "no integer prefix", raw: ".5", mode: ParseLenient, expectedError: true},
		{name: "NaN", raw: "NaN", mode: ParseLenient, expectedError: true},
		{name: "infinity", raw: "Infinity", mode: ParseLenient, expectedError: true},
		{name: "overflowing integer", raw: "99999999999999999999", mode: ParseLenient, expectedError: true},
		{name: "hexadecimal float", raw: "0x1p4", mode: ParseLenient, expectedError: true},
		{name: "negative hexadecimal float", raw: "-0X1P-2", mode: ParseLenient, expectedError: true},
		{name: "hexadecimal integer", raw: "0x10", mode: ParseLenient, expectedError: true},
		{name: "hexadecimal in strict mode", raw: "0x10", mode: ParseStrict, expectedError: true},
		{name: "strict integer", raw: "153", mode: ParseStrict, expected: 153},
		{name: "strict negative", raw: "-153", mode: ParseStrict, expected: -153},
		{name: "strict rejects decimal", raw: "10.9", mode: ParseStrict, expectedError: true},
		{name: "strict rejects exponent", raw: "1e3", mode: ParseStrict, expectedError: true},
		{name: "strict rejects empty", raw: "", mode: ParseStrict, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNumber(tt.raw, tt.mode)
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestParseNumber_IntBounds(t *testing.T) {
	n, err := ParseNumber(strconv.Itoa(math.MaxInt), ParseStrict)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)

	n, err = ParseNumber(strconv.Itoa(math.MinInt), ParseLenient)
	assert.NoError(t, err)
	assert.Equal(t, math.MinInt, n)
}

func TestClassifyRequest_Parse(t *testing.T) {
	_, err := ClassifyRequest{}.Parse(ParseLenient)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	n, err := ClassifyRequest{Raw: "6", Present: true}.Parse(ParseLenient)
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "number: must be a valid integer", ErrInvalidNumber.Error())
}
