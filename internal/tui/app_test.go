package tui

import (
	"errors"
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/modal"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	submitter *testfixtures.MockSubmitter
	opener    *testfixtures.MockOpener
}

func newTestApp(t *testing.T, variant string) *testApp {
	t.Helper()
	v, err := page.Lookup(variant)
	require.NoError(t, err)

	sub := testfixtures.NewMockSubmitter()
	op := &testfixtures.MockOpener{}
	app := NewApp(Options{
		Variant:   v,
		Submitter: sub,
		Opener:    op,
		Renderer:  page.NewRenderer(page.StyleASCII),
	})
	app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return &testApp{App: app, submitter: sub, opener: op}
}

// key sends one key press and returns the resulting command.
func (a *testApp) key(name string) tea.Cmd {
	_, cmd := a.Update(testfixtures.Key(name))
	return cmd
}

func (a *testApp) typeText(s string) {
	for _, k := range testfixtures.Type(s) {
		a.Update(k)
	}
}

// deliver feeds the messages produced by cmd back into the app, skipping
// spinner ticks, and returns the command of the last one. It does not
// follow that command.
func (a *testApp) deliver(cmd tea.Cmd) tea.Cmd {
	var last tea.Cmd
	for _, msg := range testfixtures.Exec(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		_, last = a.Update(msg)
	}
	return last
}

// focusCTA tabs through the focus ring until a CTA with label is focused.
func (a *testApp) focusCTA(t *testing.T, label string) {
	t.Helper()
	for range a.variant.CTAs() {
		if a.page.Focused().Label == label {
			return
		}
		a.key("tab")
	}
	t.Fatalf("no CTA labeled %q", label)
}

func (a *testApp) screen(t *testing.T) string {
	t.Helper()
	return testfixtures.Render(t, a.Draw)
}

func TestApp_HybridTesterCTAOpensModal(t *testing.T) {
	a := newTestApp(t, "hibrido")

	a.focusCTA(t, "Tester")
	a.deliver(a.key("enter"))

	require.Equal(t, modal.ShowingForm, a.ctrl.Phase())
	require.Equal(t, funnel.TesterSignup, a.ctrl.Kind())
	require.True(t, a.ctrl.Inert())
	require.Contains(t, a.screen(t), "Sé tester de Emony")
}

func TestApp_HybridLoanCTARedirectsAndQuits(t *testing.T) {
	a := newTestApp(t, "hibrido")

	a.focusCTA(t, "Solicitar")
	redirect := a.deliver(a.key("enter"))
	require.Equal(t, modal.Closed, a.ctrl.Phase())
	quit := a.deliver(redirect)

	require.Equal(t, []string{page.ExternalAppURL}, a.opener.URLs())
	require.True(t, a.quitting)
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, testfixtures.Exec(quit))
	require.Equal(t, page.ExternalAppURL, a.Result().RedirectURL)
	require.NoError(t, a.Result().RedirectErr)
}

func TestApp_RedirectFailureIsReported(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.opener.Err = errors.New("no browser")

	a.focusCTA(t, "Explora Emony")
	a.deliver(a.deliver(a.key("enter")))

	require.Equal(t, page.ExternalAppURL, a.Result().RedirectURL)
	require.EqualError(t, a.Result().RedirectErr, "no browser")
	require.False(t, a.quitting, "the page stays up so the link can be copied")
	require.True(t, a.Toast().Visible())
	require.Contains(t, a.screen(t), "No pudimos abrir el navegador")

	a.Update(ToastDismissMsg{Seq: 1})
	require.False(t, a.Toast().Visible())
}

func TestApp_CTAsIgnoredWhileRedirectPending(t *testing.T) {
	a := newTestApp(t, "hibrido")

	a.focusCTA(t, "Solicitar")
	redirect := a.deliver(a.key("enter"))
	require.NotNil(t, redirect)

	a.focusCTA(t, "Tester")
	require.Nil(t, a.deliver(a.key("enter")))
	require.Equal(t, modal.Closed, a.ctrl.Phase(), "no modal opens while the browser is opening")

	a.deliver(redirect)
	require.True(t, a.quitting)
	require.Equal(t, []string{page.ExternalAppURL}, a.opener.URLs())
}

func TestApp_FailedRedirectReenablesCTAs(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.opener.Err = errors.New("no browser")

	a.focusCTA(t, "Solicitar")
	a.deliver(a.deliver(a.key("enter")))
	require.False(t, a.quitting)

	a.focusCTA(t, "Tester")
	a.deliver(a.key("enter"))
	require.Equal(t, modal.ShowingForm, a.ctrl.Phase())
}

func TestApp_PasteReachesOpenForm(t *testing.T) {
	a := newTestApp(t, "hibrido")

	a.Update(tea.PasteMsg{Content: "Abel"})
	require.Equal(t, modal.Closed, a.ctrl.Phase(), "paste on the page does nothing")

	a.deliver(a.key("enter"))
	a.Update(tea.PasteMsg{Content: "Abel\n"})
	require.Equal(t, "Abel", a.ctrl.Form().Value(funnel.FieldName))
}

func TestApp_SalesLoanCTAOpensLoanModal(t *testing.T) {
	a := newTestApp(t, "venta")

	a.focusCTA(t, "Solicitar")
	a.deliver(a.key("enter"))

	require.Equal(t, funnel.LoanRequest, a.ctrl.Kind())
	require.Empty(t, a.opener.URLs())
}

func TestApp_TestingVariantFunnelsEverythingToTester(t *testing.T) {
	a := newTestApp(t, "testing")

	a.focusCTA(t, "Solicitar")
	a.deliver(a.key("enter"))

	require.Equal(t, funnel.TesterSignup, a.ctrl.Kind())
}

func TestApp_ModalBlocksPageKeys(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.deliver(a.key("enter")) // header CTA opens the tester modal
	require.True(t, a.ctrl.Inert())

	focused := a.page.Focused()
	offset := a.page.YOffset()

	a.key("q")
	require.False(t, a.quitting)
	a.key("tab")
	a.key("3")
	require.Equal(t, focused, a.page.Focused())
	require.Equal(t, offset, a.page.YOffset())

	// A CTA message arriving while the modal is open is ignored.
	a.Update(CTAActivatedMsg{CTA: page.CTA{Label: "x", Action: page.Redirect("https://example.com")}})
	require.Empty(t, a.opener.URLs())
}

func TestApp_QuitKeys(t *testing.T) {
	a := newTestApp(t, "hibrido")
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, testfixtures.Exec(a.key("q")))

	b := newTestApp(t, "hibrido")
	b.deliver(b.key("enter"))
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, testfixtures.Exec(b.key("ctrl+c")), "ctrl+c quits even with the modal open")
}

func TestApp_EscClosesFromEveryPhase(t *testing.T) {
	a := newTestApp(t, "hibrido")

	a.deliver(a.key("enter"))
	require.Equal(t, modal.ShowingForm, a.ctrl.Phase())
	a.key("esc")
	require.Equal(t, modal.Closed, a.ctrl.Phase())
	require.Nil(t, a.ctrl.Form())

	a.deliver(a.key("enter"))
	fillTester(t, a)
	a.submitAndWait(t)
	require.Equal(t, modal.ShowingSuccess, a.ctrl.Phase())
	a.key("esc")
	require.Equal(t, modal.Closed, a.ctrl.Phase())
}

// fillTester walks the tester form to its final step through the keyboard.
func fillTester(t *testing.T, a *testApp) {
	t.Helper()
	a.typeText("Abel")
	a.key("tab")
	a.key("right") // 18-24
	a.key("tab")
	a.key("tab")
	a.key("enter")
	require.Equal(t, 2, a.ctrl.Form().Step())

	a.key("right") // android
	a.key("tab")
	a.typeText("abel@example.com")
	a.key("enter") // last field of the step: continue
	require.Equal(t, 3, a.ctrl.Form().Step())

	a.key("right") // si
	require.True(t, a.ctrl.Form().CanAdvance())
}

// submitAndWait presses the submit button and applies the completion.
func (a *testApp) submitAndWait(t *testing.T) {
	t.Helper()
	a.key("shift+tab") // next zone
	req := testfixtures.Exec(a.key("enter"))
	require.Equal(t, []tea.Msg{SubmitRequestedMsg{}}, req)
	_, cmd := a.Update(req[0])
	require.True(t, a.ctrl.Form().Loading())
	a.deliver(cmd)
}

func TestApp_TesterFlowEndsOnSuccess(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.deliver(a.key("enter"))
	fillTester(t, a)

	a.key("shift+tab")
	req := testfixtures.Exec(a.key("enter"))
	_, cmd := a.Update(req[0])
	require.Contains(t, a.screen(t), "Enviando…")

	a.deliver(cmd)
	require.Equal(t, modal.ShowingSuccess, a.ctrl.Phase())

	leads := a.submitter.Leads()
	require.Len(t, leads, 1)
	require.Equal(t, funnel.TesterSignup.String(), leads[0].Kind)
	require.Equal(t, "hibrido", leads[0].Variant)
	require.Equal(t, "Abel", leads[0].Fields[funnel.FieldName])
	require.Equal(t, "abel@example.com", leads[0].Fields[funnel.FieldContact])

	screen := a.screen(t)
	require.Contains(t, screen, "¡Listo! Eres parte del user testing")
	require.Contains(t, screen, "¿Qué sigue?")
	require.Contains(t, screen, "Cerrar")

	a.key("enter")
	require.Equal(t, modal.Closed, a.ctrl.Phase())
}

func TestApp_CloseDuringSubmissionDropsCompletion(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.deliver(a.key("enter"))
	fillTester(t, a)

	a.key("shift+tab")
	req := testfixtures.Exec(a.key("enter"))
	a.Update(req[0])
	require.True(t, a.ctrl.Form().Loading())

	done := modal.Completion{Session: a.ctrl.Session(), Kind: funnel.TesterSignup}
	a.key("esc")
	require.Equal(t, modal.Closed, a.ctrl.Phase())

	a.Update(SubmissionDoneMsg{Done: done})
	require.Equal(t, modal.Closed, a.ctrl.Phase(), "late completion must not reopen the modal")

	// Reopening starts from a blank form.
	a.deliver(a.key("enter"))
	require.Equal(t, modal.ShowingForm, a.ctrl.Phase())
	require.Equal(t, 1, a.ctrl.Form().Step())
	require.Empty(t, a.ctrl.Form().Value(funnel.FieldName))
}

func TestApp_FailedSubmissionKeepsForm(t *testing.T) {
	a := newTestApp(t, "hibrido")
	a.submitter.Err = errors.New("sink down")
	a.deliver(a.key("enter"))
	fillTester(t, a)
	a.submitAndWait(t)

	require.Equal(t, modal.ShowingForm, a.ctrl.Phase())
	require.False(t, a.ctrl.Form().Loading())
	require.Equal(t, 3, a.ctrl.Form().Step())
	screen := a.screen(t)
	require.Contains(t, screen, "Inténtalo de nuevo")
	require.NotContains(t, screen, "sink down")
}

func TestApp_PageIsDimmedBehindModal(t *testing.T) {
	a := newTestApp(t, "hibrido")
	before := a.screen(t)
	require.Contains(t, before, "Emony")
	require.Contains(t, before, "[ Tester ]")
	require.True(t, strings.Contains(before, "tab botones"))

	a.deliver(a.key("enter"))
	after := a.screen(t)
	require.Contains(t, after, "Paso 1 de 3")
	require.Contains(t, after, "esc cerrar")
}

func TestApp_ViewBeforeResize(t *testing.T) {
	app := NewApp(Options{Variant: page.Variant{Name: "x"}})
	require.NotPanics(t, func() { app.View() })
}
