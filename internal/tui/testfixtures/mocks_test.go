package testfixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/submit"
	"github.com/stretchr/testify/require"
)

func TestMockSubmitterRecords(t *testing.T) {
	m := NewMockSubmitter()
	lead := submit.NewLead(funnel.TesterSignup, "hibrido", TesterValues())

	r, err := m.Submit(context.Background(), lead)
	require.NoError(t, err)
	require.Equal(t, lead.ID, r.LeadID)
	require.Len(t, m.Leads(), 1)

	m.Err = errors.New("down")
	_, err = m.Submit(context.Background(), lead)
	require.EqualError(t, err, "down")
	require.Len(t, m.Leads(), 2)
}

func TestMockSubmitterGateHonoursContext(t *testing.T) {
	m := &MockSubmitter{Gate: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Submit(ctx, submit.NewLead(funnel.LoanRequest, "venta", LoanValues()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockOpener(t *testing.T) {
	m := &MockOpener{}
	require.NoError(t, m.Open("https://app.emony.info/"))
	require.Equal(t, []string{"https://app.emony.info/"}, m.URLs())
}

func TestFixturesAreComplete(t *testing.T) {
	require.True(t, funnel.Complete(funnel.LoanRequest, LoanValues()))
	require.True(t, funnel.Complete(funnel.TesterSignup, TesterValues()))
}
