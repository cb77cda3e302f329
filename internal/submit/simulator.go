package submit

import (
	"context"
	"time"
)

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = 900 * time.Millisecond

// Simulator stands in for a network call: it waits Delay and then succeeds.
// It only fails when ctx is cancelled first.
type Simulator struct {
	Delay time.Duration
}

// NewSimulator returns a Simulator with the given delay. A negative delay is
// treated as zero.
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{Delay: delay}
}

// Submit implements Submitter.
func (s *Simulator) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case at := <-timer.C:
		return Receipt{LeadID: lead.ID, Sink: "simulated", At: at.UTC()}, nil
	}
}
