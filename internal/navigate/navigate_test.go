package navigate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://app.emony.info/", false},
		{"http://localhost:8080/x", false},
		{"app.emony.info", true},
		{"javascript:alert(1)", true},
		{"file:///etc/passwd", true},
		{"https://", true},
		{"://", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			err := Check(tt.url)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidURL)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBrowserRejectsInvalidURL(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Browser{}.Open("ftp://example.com"), ErrInvalidURL)
}

func TestOpenerFunc(t *testing.T) {
	t.Parallel()

	var got string
	var o Opener = OpenerFunc(func(url string) error {
		got = url
		return nil
	})
	require.NoError(t, o.Open("https://app.emony.info/"))
	require.Equal(t, "https://app.emony.info/", got)
}
