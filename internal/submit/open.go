package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	natsstore "github.com/emony/landing/internal/nats"
)

// ErrUnknownSink is returned for a sink name Open does not know.
var ErrUnknownSink = errors.New("unknown sink")

// Sink names accepted by Open.
const (
	SinkSimulated = "simulated"
	SinkNATS      = "nats"
	SinkRedis     = "redis"
	SinkHTTP      = "http"
)

// Sinks lists every valid sink name.
var Sinks = []string{SinkSimulated, SinkNATS, SinkRedis, SinkHTTP}

// ValidSink reports whether name is a known sink.
func ValidSink(name string) bool {
	for _, s := range Sinks {
		if s == name {
			return true
		}
	}
	return false
}

// Options selects and configures a sink.
type Options struct {
	Sink      string
	Delay     time.Duration
	DataDir   string
	RedisAddr string
	IntakeURL string
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open builds the Submitter named by opts.Sink. The returned closer releases
// whatever the sink holds (embedded server, client connections).
func Open(ctx context.Context, opts Options) (Submitter, io.Closer, error) {
	switch opts.Sink {
	case "", SinkSimulated:
		delay := opts.Delay
		if delay == 0 {
			delay = DefaultDelay
		}
		return NewSimulator(delay), nopCloser, nil

	case SinkNATS:
		emb, err := natsstore.Open(filepath.Join(opts.DataDir, "nats"))
		if err != nil {
			return nil, nil, fmt.Errorf("starting nats: %w", err)
		}
		sink, err := NewJetStreamSink(ctx, emb.JS)
		if err != nil {
			_ = emb.Close()
			return nil, nil, err
		}
		return sink, emb, nil

	case SinkRedis:
		sink := NewRedisSink(opts.RedisAddr)
		if err := sink.Ping(ctx); err != nil {
			_ = sink.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", opts.RedisAddr, err)
		}
		return sink, sink, nil

	case SinkHTTP:
		if opts.IntakeURL == "" {
			return nil, nil, errors.New("http sink needs an intake url")
		}
		return NewHTTPSink(opts.IntakeURL, nil), nopCloser, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSink, opts.Sink)
	}
}
