package submit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/emony/landing/internal/funnel"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisSink(t *testing.T) (*RedisSink, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	sink := NewRedisSinkWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = sink.Close() })
	return sink, mr
}

func TestRedisSinkStoresLead(t *testing.T) {
	t.Parallel()

	sink, mr := newTestRedisSink(t)
	ctx := context.Background()
	require.NoError(t, sink.Ping(ctx))

	lead := testLead(funnel.LoanRequest)
	r, err := sink.Submit(ctx, lead)
	require.NoError(t, err)
	require.Equal(t, "redis", r.Sink)

	ids, err := mr.List(ListKey("loan"))
	require.NoError(t, err)
	require.Equal(t, []string{lead.ID}, ids)
	require.Equal(t, "loan", mr.HGet(LeadKey(lead.ID), "kind"))

	got, err := sink.Get(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, lead.Fields, got.Fields)
	require.Equal(t, lead.Variant, got.Variant)
	require.True(t, lead.CreatedAt.Equal(got.CreatedAt))
}

func TestRedisSinkListsPerFunnel(t *testing.T) {
	t.Parallel()

	sink, _ := newTestRedisSink(t)
	ctx := context.Background()

	first := testLead(funnel.TesterSignup)
	second := testLead(funnel.TesterSignup)
	loan := testLead(funnel.LoanRequest)
	for _, l := range []Lead{first, loan, second} {
		_, err := sink.Submit(ctx, l)
		require.NoError(t, err)
	}

	testers, err := sink.List(ctx, "tester")
	require.NoError(t, err)
	require.Len(t, testers, 2)
	require.Equal(t, first.ID, testers[0].ID)
	require.Equal(t, second.ID, testers[1].ID)
}

func TestRedisSinkGetMissing(t *testing.T) {
	t.Parallel()

	sink, _ := newTestRedisSink(t)
	_, err := sink.Get(context.Background(), "nope")
	require.ErrorIs(t, err, redis.Nil)
}

func TestRedisSinkFailsWhenServerIsDown(t *testing.T) {
	t.Parallel()

	sink, mr := newTestRedisSink(t)
	mr.SetError("LOADING server is loading")

	_, err := sink.Submit(context.Background(), testLead(funnel.LoanRequest))
	require.Error(t, err)
}
