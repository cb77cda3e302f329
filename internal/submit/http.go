package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// HTTPSink posts leads to a remote intake server (see `emony intake`).
type HTTPSink struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSink returns a sink posting to baseURL. A nil client uses a default
// client with a short timeout.
func NewHTTPSink(baseURL string, client *http.Client) *HTTPSink {
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	return &HTTPSink{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Submit posts the lead to /api/leads/<kind>.
func (s *HTTPSink) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return Receipt{}, fmt.Errorf("marshaling lead: %w", err)
	}

	url := fmt.Sprintf("%s/api/leads/%s", s.baseURL, lead.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("posting lead: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Receipt{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Receipt{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}

	var receipt Receipt
	if err := json.Unmarshal(payload, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("decoding receipt: %w", err)
	}
	if receipt.LeadID == "" {
		receipt.LeadID = lead.ID
	}
	return receipt, nil
}
