// Package navigate hands external URLs to the system browser.
package navigate

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/cli/browser"
	"github.com/emony/landing/internal/logger"
)

// ErrInvalidURL is returned for URLs that are not absolute http(s) links.
var ErrInvalidURL = errors.New("invalid redirect url")

// Opener leaves the current surface for url.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f.
func (f OpenerFunc) Open(url string) error { return f(url) }

// Browser opens URLs with the platform's default browser.
type Browser struct{}

// Open implements Opener.
func (Browser) Open(raw string) error {
	if err := Check(raw); err != nil {
		return err
	}
	logger.Info("redirecting to %s", raw)
	if err := browser.OpenURL(raw); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

// Check validates that raw is an absolute http or https URL.
func Check(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
