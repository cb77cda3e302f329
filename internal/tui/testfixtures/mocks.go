package testfixtures

import (
	"context"
	"sync"

	"github.com/emony/landing/internal/submit"
)

// MockSubmitter records leads and answers with Err, or a receipt.
// When Gate is set, Submit waits for it to be closed or for ctx.
type MockSubmitter struct {
	mu    sync.Mutex
	leads []submit.Lead

	Err  error
	Gate chan struct{}
}

// NewMockSubmitter creates a mock submitter that accepts every lead.
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{}
}

// Submit implements submit.Submitter.
func (m *MockSubmitter) Submit(ctx context.Context, lead submit.Lead) (submit.Receipt, error) {
	m.mu.Lock()
	m.leads = append(m.leads, lead)
	gate, err := m.Gate, m.Err
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return submit.Receipt{}, ctx.Err()
		}
	}
	if err != nil {
		return submit.Receipt{}, err
	}
	return submit.Receipt{LeadID: lead.ID, Sink: "mock", At: FixedTime}, nil
}

// Leads returns the submitted leads.
func (m *MockSubmitter) Leads() []submit.Lead {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]submit.Lead(nil), m.leads...)
}

// MockOpener records the URLs it is asked to open.
type MockOpener struct {
	mu   sync.Mutex
	urls []string

	Err error
}

// Open implements navigate.Opener.
func (m *MockOpener) Open(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	return m.Err
}

// URLs returns the opened URLs.
func (m *MockOpener) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}
