// ABOUTME: Numeric input normalization for form fields
// ABOUTME: Accepts comma decimals, strips whitespace, failed parse means absent
package forms

import (
	"strconv"
	"strings"
)

// ParseDecimal normalizes a user-typed numeric string and converts it.
// Comma is accepted as the decimal separator and all whitespace is
// stripped first. An empty or unparseable input yields nil, which the
// payload layer treats as "field not provided"; mandatory fields catch
// the nil during validation instead.
func ParseDecimal(input string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ' ':
			return -1
		}
		return r
	}, input)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseCount parses a non-negative integer field such as a bedroom
// count. Anything unparseable or negative collapses to zero.
func ParseCount(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseID parses a numeric entity id typed into a reference field.
// Empty or invalid input yields nil.
func ParseID(input string) *int64 {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
