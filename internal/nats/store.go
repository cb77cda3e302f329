package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// LeadStream is the JetStream stream holding every captured lead.
const LeadStream = "emony_leads"

const (
	leadSubjectRoot = "emony.leads"
	leadRetention   = 90 * 24 * time.Hour
	fetchWait       = 500 * time.Millisecond
)

// LeadSubject returns the subject a lead of the given funnel is published on.
// Example: "emony.leads.tester"
func LeadSubject(funnel string) string {
	return fmt.Sprintf("%s.%s", leadSubjectRoot, funnel)
}

// AllLeadsSubject matches every lead subject.
func AllLeadsSubject() string {
	return leadSubjectRoot + ".>"
}

// SetupLeadStream creates or updates the lead stream.
func SetupLeadStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     LeadStream,
		Subjects: []string{AllLeadsSubject()},
		Storage:  jetstream.FileStorage,
		MaxAge:   leadRetention,
	})
}

// Message is a raw stored lead with its stream position.
type Message struct {
	Seq     uint64
	Subject string
	Data    []byte
}

// CountMessages returns how many messages in the stream match subject. An
// empty subject counts the whole stream.
func CountMessages(ctx context.Context, stream jetstream.Stream, subject string) (int, error) {
	if subject == "" {
		info, err := stream.Info(ctx)
		if err != nil {
			return 0, fmt.Errorf("reading stream info: %w", err)
		}
		return int(info.State.Msgs), nil
	}

	info, err := stream.Info(ctx, jetstream.WithSubjectFilter(subject))
	if err != nil {
		return 0, fmt.Errorf("reading stream info: %w", err)
	}
	var n uint64
	for _, count := range info.State.Subjects {
		n += count
	}
	return int(n), nil
}

// ReadAll returns up to limit messages matching subject, oldest first.
// A limit of zero or less reads everything currently in the stream.
func ReadAll(ctx context.Context, stream jetstream.Stream, subject string, limit int) ([]Message, error) {
	cfg := jetstream.OrderedConsumerConfig{
		DeliverPolicy: jetstream.DeliverAllPolicy,
	}
	if subject != "" {
		cfg.FilterSubjects = []string{subject}
	}
	cons, err := stream.OrderedConsumer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	pending, err := CountMessages(ctx, stream, subject)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < pending {
		pending = limit
	}

	out := make([]Message, 0, pending)
	for len(out) < pending {
		batch, err := cons.Fetch(pending-len(out), jetstream.FetchMaxWait(fetchWait))
		if err != nil {
			return nil, fmt.Errorf("fetching leads: %w", err)
		}
		got := 0
		for msg := range batch.Messages() {
			meta, err := msg.Metadata()
			if err != nil {
				return nil, fmt.Errorf("reading metadata: %w", err)
			}
			out = append(out, Message{Seq: meta.Sequence.Stream, Subject: msg.Subject(), Data: msg.Data()})
			got++
		}
		if err := batch.Error(); err != nil && !errors.Is(err, jetstream.ErrNoMessages) {
			return nil, fmt.Errorf("fetching leads: %w", err)
		}
		if got == 0 {
			// Messages removed after counting.
			break
		}
	}
	return out, nil
}
