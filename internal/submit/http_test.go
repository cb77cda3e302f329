package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emony/landing/internal/funnel"
	"github.com/stretchr/testify/require"
)

func TestHTTPSinkPostsLead(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotLead Lead
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotLead)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Receipt{LeadID: gotLead.ID, Sink: "nats", At: time.Now()})
	}))
	defer srv.Close()

	lead := testLead(funnel.TesterSignup)
	r, err := NewHTTPSink(srv.URL+"/", nil).Submit(context.Background(), lead)
	require.NoError(t, err)
	require.Equal(t, "/api/leads/tester", gotPath)
	require.Equal(t, lead.Fields, gotLead.Fields)
	require.Equal(t, lead.ID, r.LeadID)
	require.Equal(t, "nats", r.Sink)
}

func TestHTTPSinkErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		rejected bool
	}{
		{"bad request", http.StatusBadRequest, true},
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			_, err := NewHTTPSink(srv.URL, nil).Submit(context.Background(), testLead(funnel.LoanRequest))
			var status *StatusError
			require.ErrorAs(t, err, &status)
			require.Equal(t, tt.status, status.Code)
			require.Equal(t, "nope", status.Body)
			if tt.rejected {
				require.ErrorIs(t, err, ErrRejected)
			} else {
				require.NotErrorIs(t, err, ErrRejected)
			}
		})
	}
}
