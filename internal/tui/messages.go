package tui

import (
	"github.com/emony/landing/internal/modal"
	"github.com/emony/landing/internal/page"
)

// CTAActivatedMsg is sent when the visitor activates a call-to-action.
type CTAActivatedMsg struct {
	CTA page.CTA
}

// SubmitRequestedMsg is sent by the form when its submit button is pressed.
type SubmitRequestedMsg struct{}

// SubmissionDoneMsg carries a finished submission back to the event loop.
type SubmissionDoneMsg struct {
	Done modal.Completion
}

// RedirectDoneMsg reports the outcome of handing a URL to the browser.
type RedirectDoneMsg struct {
	URL string
	Err error
}
