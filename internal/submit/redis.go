package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "emony"

// RedisSink appends leads to a per-funnel list and keeps each lead in a hash.
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink connects to addr.
func NewRedisSink(addr string) *RedisSink {
	return NewRedisSinkWithClient(redis.NewClient(&redis.Options{Addr: addr}))
}

// NewRedisSinkWithClient wraps an existing client.
func NewRedisSinkWithClient(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

// ListKey is the list holding the lead IDs of one funnel.
func ListKey(kind string) string {
	return fmt.Sprintf("%s:leads:%s", redisKeyPrefix, kind)
}

// LeadKey is the hash holding one lead.
func LeadKey(id string) string {
	return fmt.Sprintf("%s:lead:%s", redisKeyPrefix, id)
}

// Ping checks the connection.
func (s *RedisSink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Submit writes the lead hash and appends its ID in one transaction.
func (s *RedisSink) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	fields, err := json.Marshal(lead.Fields)
	if err != nil {
		return Receipt{}, fmt.Errorf("marshaling fields: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, LeadKey(lead.ID),
			"kind", lead.Kind,
			"variant", lead.Variant,
			"fields", string(fields),
			"created_at", lead.CreatedAt.Format(time.RFC3339Nano),
		)
		pipe.RPush(ctx, ListKey(lead.Kind), lead.ID)
		return nil
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("storing lead: %w", err)
	}
	return Receipt{LeadID: lead.ID, Sink: "redis", At: time.Now().UTC()}, nil
}

// Get loads one lead by ID.
func (s *RedisSink) Get(ctx context.Context, id string) (Lead, error) {
	vals, err := s.client.HGetAll(ctx, LeadKey(id)).Result()
	if err != nil {
		return Lead{}, fmt.Errorf("loading lead %s: %w", id, err)
	}
	if len(vals) == 0 {
		return Lead{}, fmt.Errorf("lead %s: %w", id, redis.Nil)
	}

	lead := Lead{ID: id, Kind: vals["kind"], Variant: vals["variant"]}
	if err := json.Unmarshal([]byte(vals["fields"]), &lead.Fields); err != nil {
		return Lead{}, fmt.Errorf("decoding lead %s fields: %w", id, err)
	}
	if lead.CreatedAt, err = time.Parse(time.RFC3339Nano, vals["created_at"]); err != nil {
		return Lead{}, fmt.Errorf("decoding lead %s time: %w", id, err)
	}
	return lead, nil
}

// List returns the leads of one funnel, oldest first.
func (s *RedisSink) List(ctx context.Context, kind string) ([]Lead, error) {
	ids, err := s.client.LRange(ctx, ListKey(kind), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing %s leads: %w", kind, err)
	}
	leads := make([]Lead, 0, len(ids))
	for _, id := range ids {
		lead, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// Close closes the client.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
