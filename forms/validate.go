// ABOUTME: Ordered field validators shared by the entity forms
// ABOUTME: Each failure appends one human-readable message; none stops the run
package forms

import (
	"regexp"
	"strings"
)

// emailPattern matches the permissive check the product has always
// used: something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors collects validation messages in the order the validators ran.
// A non-empty list aborts submission before any network call.
type Errors []string

func (e *Errors) Add(message string) {
	*e = append(*e, message)
}

func (e Errors) OK() bool {
	return len(e) == 0
}

// Require appends message when value is blank.
func (e *Errors) Require(value, message string) {
	if strings.TrimSpace(value) == "" {
		e.Add(message)
	}
}

// RequireEmail appends message when value does not look like an email.
// Blank values are reported too; callers wanting optional emails check
// for blank first.
func (e *Errors) RequireEmail(value, message string) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		e.Add(message)
	}
}

// RequireDecimal appends message when value does not normalize to a
// number. Used for mandatory numeric fields such as price.
func (e *Errors) RequireDecimal(value, message string) {
	if ParseDecimal(value) == nil {
		e.Add(message)
	}
}
