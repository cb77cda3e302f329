// Package modal owns the lifecycle of the lead-capture modal: which funnel is
// showing, the form of the current session, and how submission results are
// applied.
package modal

import (
	"context"

	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/submit"
)

// Phase is the modal's display state.
type Phase int

const (
	Closed Phase = iota
	ShowingForm
	ShowingSuccess
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case ShowingForm:
		return "form"
	case ShowingSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Controller drives one modal. Every Open starts a new session with its own
// form and context; Close cancels the context and drops the form, so results
// of work started in an earlier session are ignored.
//
// A Controller is owned by the UI event loop and is not safe for concurrent
// use. Only Job.Run may execute on another goroutine.
type Controller struct {
	submitter submit.Submitter
	variant   string

	phase   Phase
	kind    funnel.Kind
	form    *funnel.Form
	session uint64
	ctx     context.Context
	cancel  context.CancelFunc
	err     error
	receipt submit.Receipt
}

// New returns a closed controller submitting through s. variant is recorded
// on every lead.
func New(s submit.Submitter, variant string) *Controller {
	return &Controller{submitter: s, variant: variant}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Kind returns the funnel of the current or last session.
func (c *Controller) Kind() funnel.Kind { return c.kind }

// Form returns the live form, or nil when the modal is closed.
func (c *Controller) Form() *funnel.Form { return c.form }

// Session identifies the current modal session.
func (c *Controller) Session() uint64 { return c.session }

// Err returns the error of the last failed submission in this session.
func (c *Controller) Err() error { return c.err }

// Receipt returns the receipt of the session's successful submission.
func (c *Controller) Receipt() submit.Receipt { return c.receipt }

// Inert reports whether the page behind the modal must ignore input.
func (c *Controller) Inert() bool { return c.phase != Closed }

// Open starts a fresh session showing the form for kind. An open session is
// closed first.
func (c *Controller) Open(kind funnel.Kind) {
	if c.phase != Closed {
		c.Close()
	}
	c.session++
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.kind = kind
	c.form = funnel.NewForm(kind)
	c.phase = ShowingForm
	c.err = nil
	c.receipt = submit.Receipt{}
	logger.Debug("modal session %d opened for %s", c.session, kind)
}

// Close ends the session from any phase. An in-flight submission is
// cancelled and its completion will be ignored.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.phase != Closed {
		logger.Debug("modal session %d closed from %s", c.session, c.phase)
	}
	c.session++
	c.ctx, c.cancel = nil, nil
	c.form = nil
	c.phase = Closed
	c.err = nil
	c.receipt = submit.Receipt{}
}

// Job is a submission ready to run off the event loop.
type Job struct {
	session   uint64
	kind      funnel.Kind
	lead      submit.Lead
	ctx       context.Context
	submitter submit.Submitter
}

// Lead returns the payload the job will submit.
func (j *Job) Lead() submit.Lead { return j.lead }

// Run performs the submission. It blocks until the submitter returns.
func (j *Job) Run() Completion {
	receipt, err := j.submitter.Submit(j.ctx, j.lead)
	return Completion{Session: j.session, Kind: j.kind, Receipt: receipt, Err: err}
}

// Completion is the outcome of a Job, tagged with the session it belongs to.
type Completion struct {
	Session uint64
	Kind    funnel.Kind
	Receipt submit.Receipt
	Err     error
}

// Submit starts a submission of the current form. It returns false, changing
// nothing, unless the form is showing, on its final step, complete, and not
// already submitting.
func (c *Controller) Submit() (*Job, bool) {
	if c.phase != ShowingForm {
		return nil, false
	}
	values, ok := c.form.BeginSubmit()
	if !ok {
		return nil, false
	}
	c.err = nil
	return &Job{
		session:   c.session,
		kind:      c.kind,
		lead:      submit.NewLead(c.kind, c.variant, values),
		ctx:       c.ctx,
		submitter: c.submitter,
	}, true
}

// Complete applies a finished job. Completions from another session, or
// arriving when the form is no longer showing, are dropped and false is
// returned. A failed submission keeps the form open with Err set.
func (c *Controller) Complete(done Completion) bool {
	if done.Session != c.session || c.phase != ShowingForm {
		logger.Debug("dropping stale completion for session %d (current %d, %s)", done.Session, c.session, c.phase)
		return false
	}

	c.form.FinishSubmit()
	if done.Err != nil {
		c.err = done.Err
		logger.Warn("submitting %s lead failed: %v", done.Kind, done.Err)
		return true
	}

	c.receipt = done.Receipt
	c.phase = ShowingSuccess
	logger.Info("%s lead %s accepted by %s", done.Kind, done.Receipt.LeadID, done.Receipt.Sink)
	return true
}

// Success returns the completion copy for the session's funnel.
func (c *Controller) Success() funnel.Message {
	return funnel.Success(c.kind)
}
