package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountMessagesHonoursSubjectFilter(t *testing.T) {
	emb, err := Open(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	ctx := context.Background()
	stream, err := SetupLeadStream(ctx, emb.JS)
	require.NoError(t, err)

	for _, funnel := range []string{"loan", "tester", "tester"} {
		_, err := emb.JS.Publish(ctx, LeadSubject(funnel), []byte(`{}`))
		require.NoError(t, err)
	}

	tests := []struct {
		subject string
		want    int
	}{
		{"", 3},
		{AllLeadsSubject(), 3},
		{LeadSubject("loan"), 1},
		{LeadSubject("tester"), 2},
		{LeadSubject("other"), 0},
	}
	for _, tt := range tests {
		n, err := CountMessages(ctx, stream, tt.subject)
		require.NoError(t, err)
		require.Equal(t, tt.want, n, "subject %q", tt.subject)
	}
}

func TestReadAllFiltersBySubject(t *testing.T) {
	emb, err := Open(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	ctx := context.Background()
	stream, err := SetupLeadStream(ctx, emb.JS)
	require.NoError(t, err)

	for _, body := range []string{"a", "b", "c"} {
		_, err := emb.JS.Publish(ctx, LeadSubject("tester"), []byte(body))
		require.NoError(t, err)
	}
	_, err = emb.JS.Publish(ctx, LeadSubject("loan"), []byte("x"))
	require.NoError(t, err)

	msgs, err := ReadAll(ctx, stream, LeadSubject("loan"), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "x", string(msgs[0].Data))

	msgs, err = ReadAll(ctx, stream, LeadSubject("tester"), 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "a", string(msgs[0].Data))

	msgs, err = ReadAll(ctx, stream, LeadSubject("other"), 0)
	require.NoError(t, err)
	require.Empty(t, msgs)
}
