// Package submit is the port a completed form is handed to, with the
// simulated delay used by the landing page and the real lead sinks.
package submit

import (
	"context"
	"errors"
	"time"

	"github.com/emony/landing/internal/funnel"
	"github.com/rs/xid"
)

// ErrRejected is returned when a sink refuses a lead outright.
var ErrRejected = errors.New("lead rejected")

// Lead is the payload produced by a completed form.
type Lead struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Variant   string            `json:"variant,omitempty"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewLead builds a lead with a fresh ID. Empty values are dropped.
func NewLead(kind funnel.Kind, variant string, values funnel.Values) Lead {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			fields[k] = v
		}
	}
	return Lead{
		ID:        xid.New().String(),
		Kind:      kind.String(),
		Variant:   variant,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

// Receipt acknowledges a stored lead.
type Receipt struct {
	LeadID string    `json:"lead_id"`
	Sink   string    `json:"sink"`
	At     time.Time `json:"at"`
}

// Submitter accepts a lead and reports exactly once, either with a receipt or
// an error. Implementations must return promptly once ctx is done.
type Submitter interface {
	Submit(ctx context.Context, lead Lead) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, lead Lead) (Receipt, error)

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	return f(ctx, lead)
}
