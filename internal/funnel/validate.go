package funnel

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Minimum trimmed lengths for the free-text fields that are length checked.
const (
	minContactLen = 6
	minNameLen    = 2
)

// Values maps field names to their raw string values.
type Values map[string]string

// Get returns the value of name, or "" if unset.
func (v Values) Get(name string) string {
	return v[name]
}

func (v Values) filled(name string) bool {
	return v[name] != ""
}

func (v Values) trimmedLen(name string) int {
	return len([]rune(strings.TrimSpace(v[name])))
}

// CanAdvance reports whether the required fields of step are complete for kind.
// It is a pure function of its arguments.
func CanAdvance(kind Kind, step int, values Values) bool {
	switch kind {
	case LoanRequest:
		switch step {
		case 1:
			return values.trimmedLen(FieldAmount) >= 1 && values.filled(FieldTerm)
		case 2:
			return values.filled(FieldPurpose)
		case 3:
			return values.trimmedLen(FieldContact) >= minContactLen
		}
	case TesterSignup:
		switch step {
		case 1:
			return values.trimmedLen(FieldName) >= minNameLen && values.filled(FieldAgeRange)
		case 2:
			return values.filled(FieldDevice) && values.trimmedLen(FieldContact) >= minContactLen
		case 3:
			return values.filled(FieldUsesFinanceApps)
		}
	}
	return false
}

// Complete reports whether every step of kind passes CanAdvance.
func Complete(kind Kind, values Values) bool {
	for step := 1; step <= TotalSteps; step++ {
		if !CanAdvance(kind, step, values) {
			return false
		}
	}
	return true
}

// FirstIncompleteStep returns the first step that does not pass CanAdvance,
// or 0 when all steps pass.
func FirstIncompleteStep(kind Kind, values Values) int {
	for step := 1; step <= TotalSteps; step++ {
		if !CanAdvance(kind, step, values) {
			return step
		}
	}
	return 0
}

// TooLongError reports a value longer than its field accepts.
type TooLongError struct {
	Field string
	Max   int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("field %s is longer than %d characters", e.Field, e.Max)
}

// Clean returns the values that belong to kind's schema, dropping unknown
// names. It fails with a *TooLongError when a value exceeds its field's limit.
func Clean(kind Kind, values Values) (Values, error) {
	out := make(Values, len(values))
	for name, v := range values {
		f, ok := FieldByName(kind, name)
		if !ok {
			continue
		}
		if utf8.RuneCountInString(v) > f.MaxLen() {
			return nil, &TooLongError{Field: name, Max: f.MaxLen()}
		}
		out[name] = v
	}
	return out, nil
}
