package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emony/landing/internal/logger"
	natsstore "github.com/emony/landing/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamSink stores leads in the embedded lead stream.
type JetStreamSink struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewJetStreamSink ensures the lead stream exists and returns a sink for it.
func NewJetStreamSink(ctx context.Context, js jetstream.JetStream) (*JetStreamSink, error) {
	stream, err := natsstore.SetupLeadStream(ctx, js)
	if err != nil {
		return nil, fmt.Errorf("setting up lead stream: %w", err)
	}
	return &JetStreamSink{js: js, stream: stream}, nil
}

// Submit publishes the lead and waits for the stream acknowledgement.
func (s *JetStreamSink) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	data, err := json.Marshal(lead)
	if err != nil {
		return Receipt{}, fmt.Errorf("marshaling lead: %w", err)
	}

	ack, err := s.js.Publish(ctx, natsstore.LeadSubject(lead.Kind), data, jetstream.WithMsgID(lead.ID))
	if err != nil {
		return Receipt{}, fmt.Errorf("publishing lead: %w", err)
	}
	logger.Debug("lead %s stored in %s at seq %d", lead.ID, ack.Stream, ack.Sequence)
	return Receipt{LeadID: lead.ID, Sink: "nats", At: time.Now().UTC()}, nil
}

// List returns stored leads oldest first, optionally filtered by funnel.
func (s *JetStreamSink) List(ctx context.Context, kind string, limit int) ([]Lead, error) {
	subject := natsstore.AllLeadsSubject()
	if kind != "" {
		subject = natsstore.LeadSubject(kind)
	}
	msgs, err := natsstore.ReadAll(ctx, s.stream, subject, limit)
	if err != nil {
		return nil, err
	}

	leads := make([]Lead, 0, len(msgs))
	for _, m := range msgs {
		var lead Lead
		if err := json.Unmarshal(m.Data, &lead); err != nil {
			logger.Warn("skipping malformed lead at seq %d: %v", m.Seq, err)
			continue
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
