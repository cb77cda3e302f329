// Package funnel holds the lead-capture forms: field schemas, step validation,
// the multi-step form state machine and the completion copy.
package funnel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a funnel name does not match any Kind.
var ErrUnknownKind = errors.New("unknown funnel kind")

// Kind selects which form schema and copy a modal session displays.
type Kind int

const (
	LoanRequest Kind = iota
	TesterSignup
)

// Kinds lists every funnel in display order.
var Kinds = []Kind{LoanRequest, TesterSignup}

// String returns the short wire name used in subjects, keys and URLs.
func (k Kind) String() string {
	switch k {
	case LoanRequest:
		return "loan"
	case TesterSignup:
		return "tester"
	default:
		return "unknown"
	}
}

// ParseKind resolves a wire name back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loan":
		return LoanRequest, nil
	case "tester":
		return TesterSignup, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
