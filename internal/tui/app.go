// Package tui is the terminal rendition of the landing page: a scrollable
// page with calls-to-action and the lead-capture modal drawn over it.
package tui

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/modal"
	"github.com/emony/landing/internal/navigate"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/submit"
	"github.com/emony/landing/internal/tui/theme"
)

// Options configures an App.
type Options struct {
	Variant   page.Variant
	Submitter submit.Submitter
	Opener    navigate.Opener
	Renderer  *page.Renderer
}

// Result is what the program left the terminal with.
type Result struct {
	// RedirectURL is set when the visitor followed a link off the page.
	RedirectURL string
	// RedirectErr is set when the browser could not be opened.
	RedirectErr error
}

// App is the main Bubbletea model.
type App struct {
	variant page.Variant
	ctrl    *modal.Controller
	opener  navigate.Opener

	page    *PageView
	form    *FormModal
	success *SuccessView
	spinner Spinner
	toast   *Toast

	width       int
	height      int
	layout      Layout
	quitting    bool
	redirecting bool
	result      Result
}

// NewApp creates the landing page model.
func NewApp(opts Options) *App {
	if opts.Renderer == nil {
		opts.Renderer = page.NewRenderer(page.StyleDark)
	}
	if opts.Opener == nil {
		opts.Opener = navigate.Browser{}
	}
	if opts.Submitter == nil {
		opts.Submitter = submit.NewSimulator(submit.DefaultDelay)
	}

	ctrl := modal.New(opts.Submitter, opts.Variant.Name)
	return &App{
		variant: opts.Variant,
		ctrl:    ctrl,
		opener:  opts.Opener,
		page:    NewPageView(opts.Variant, opts.Renderer),
		form:    NewFormModal(ctrl),
		success: NewSuccessView(),
		spinner: NewDefaultSpinner(),
		toast:   NewToast(),
	}
}

// Run starts the program and blocks until the visitor quits or leaves the
// page through a redirect.
func Run(ctx context.Context, opts Options) (Result, error) {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, fmt.Errorf("landing page failed: %w", err)
	}

	a, ok := final.(*App)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type")
	}
	a.ctrl.Close()
	return a.result, nil
}

// Controller exposes the modal controller.
func (a *App) Controller() *modal.Controller { return a.ctrl }

// Page exposes the page view.
func (a *App) Page() *PageView { return a.page }

// Toast exposes the notice shown over the hint bar.
func (a *App) Toast() *Toast { return a.toast }

// Result returns how the program ended.
func (a *App) Result() Result { return a.result }

// Init initializes the model.
func (a *App) Init() tea.Cmd {
	logger.Info("landing page started with variant %s", a.variant.Name)
	return nil
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.PasteMsg:
		if a.ctrl.Phase() != modal.ShowingForm {
			return a, nil
		}
		return a, a.form.Paste(msg)

	case tea.MouseWheelMsg:
		if a.ctrl.Inert() {
			return a, nil
		}
		return a, a.page.Update(msg)

	case CTAActivatedMsg:
		return a, a.activate(msg.CTA)

	case SubmitRequestedMsg:
		return a, a.submit()

	case SubmissionDoneMsg:
		a.ctrl.Complete(msg.Done)
		return a, nil

	case RedirectDoneMsg:
		a.redirecting = false
		a.result = Result{RedirectURL: msg.URL, RedirectErr: msg.Err}
		if msg.Err != nil {
			// Stay on the page so the visitor can copy the link.
			logger.Warn("opening %s failed: %v", msg.URL, msg.Err)
			return a, a.toast.Show("No pudimos abrir el navegador. Visita " + msg.URL)
		}
		a.quitting = true
		return a, tea.Quit

	case ToastDismissMsg:
		a.toast.Update(msg)
		return a, nil

	case spinner.TickMsg:
		if !a.submitting() {
			return a, nil
		}
		return a, a.spinner.Update(msg)
	}
	return a, nil
}

// handleKeyPress routes keys. While the modal is open it receives every key
// and the page behind it is inert.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.ctrl.Inert() {
		if msg.String() == "esc" {
			a.ctrl.Close()
			return a, nil
		}
		switch a.ctrl.Phase() {
		case modal.ShowingSuccess:
			if msg.String() == "enter" || msg.String() == "space" {
				a.ctrl.Close()
			}
			return a, nil
		case modal.ShowingForm:
			return a, a.form.Update(msg)
		}
		return a, nil
	}

	if msg.String() == "q" {
		a.quitting = true
		return a, tea.Quit
	}
	return a, a.page.Update(msg)
}

// activate performs a CTA's action.
func (a *App) activate(cta page.CTA) tea.Cmd {
	if a.ctrl.Inert() || a.redirecting {
		return nil
	}
	logger.Debug("cta %q activated: %s", cta.Label, cta.Action)

	switch cta.Action.Kind {
	case page.ActionOpenModal:
		a.ctrl.Open(cta.Action.Funnel)
		return a.form.Sync()
	case page.ActionRedirect:
		a.redirecting = true
		url, opener := cta.Action.URL, a.opener
		return func() tea.Msg {
			return RedirectDoneMsg{URL: url, Err: opener.Open(url)}
		}
	case page.ActionScroll:
		a.page.ScrollTo(cta.Action.Anchor)
	}
	return nil
}

// submit starts the submission of the open form on a command goroutine.
func (a *App) submit() tea.Cmd {
	job, ok := a.ctrl.Submit()
	if !ok {
		return nil
	}
	logger.Debug("submitting %s lead %s", a.ctrl.Kind(), job.Lead().ID)
	return tea.Batch(a.spinner.Tick(), func() tea.Msg {
		return SubmissionDoneMsg{Done: job.Run()}
	})
}

func (a *App) submitting() bool {
	f := a.ctrl.Form()
	return f != nil && f.Loading()
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.layout = CalculateLayout(width, height)
	a.page.SetSize(a.layout.Page.Dx(), a.layout.Page.Dy())
	a.form.SetWidth(ModalWidth(width))
	a.success.SetWidth(ModalWidth(width))
}

// View renders the model.
func (a *App) View() tea.View {
	if a.quitting || a.width == 0 || a.height == 0 {
		return tea.NewView("")
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())

	view := tea.NewView(canvas.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders the page and, when open, the modal over it.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	inert := a.ctrl.Inert()
	layer := func(s string) string {
		if inert {
			return Dim(s)
		}
		return s
	}

	DrawText(scr, a.layout.Header, layer(a.page.HeaderView(a.layout.Header.Dx())))
	DrawText(scr, a.layout.Page, layer(a.page.View()))
	DrawText(scr, a.layout.Sticky, layer(a.page.StickyView(a.layout.Sticky.Dx())))

	s := theme.Current().S()
	switch a.ctrl.Phase() {
	case modal.ShowingForm:
		DrawText(scr, a.layout.Hints, HintForm())
		content := a.form.View(a.spinner.View())
		DrawCentered(scr, area, s.ModalContainer.Width(ModalWidth(a.width)).Render(content))
	case modal.ShowingSuccess:
		DrawText(scr, a.layout.Hints, HintSuccess())
		content := a.success.View(a.ctrl.Success())
		DrawCentered(scr, area, s.ModalContainer.Width(ModalWidth(a.width)).Render(content))
	default:
		DrawText(scr, a.layout.Hints, HintPage())
	}

	if a.toast.Visible() && a.layout.Sticky.Dy() > 0 {
		DrawText(scr, a.layout.Sticky, a.toast.View(a.layout.Sticky.Dx()))
	}
}
