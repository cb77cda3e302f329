package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/emony/landing/internal/tui/theme"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 4 * time.Second

// ToastDismissMsg hides the toast shown with the matching sequence number.
type ToastDismissMsg struct {
	Seq int
}

// Toast is a one-line notice drawn above the hint bar that dismisses itself.
type Toast struct {
	message string
	seq     int
}

// NewToast creates a hidden toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg and returns the command that dismisses it. A newer toast
// outlives the dismissal of an older one.
func (t *Toast) Show(msg string) tea.Cmd {
	t.seq++
	t.message = msg
	seq := t.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update handles dismissal.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(ToastDismissMsg); ok && m.Seq == t.seq {
		t.message = ""
	}
}

// Visible reports whether a toast is showing.
func (t *Toast) Visible() bool { return t.message != "" }

// Message returns the current toast text, empty when hidden.
func (t *Toast) Message() string { return t.message }

// View renders the toast right-aligned within width.
func (t *Toast) View(width int) string {
	if !t.Visible() {
		return ""
	}
	th := theme.Current()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(th.Warning)).
		Padding(0, 1).
		Bold(true)
	if lipgloss.Width(style.Render(t.message)) > width-2 {
		style = style.Width(max(width-2, 1))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(style.Render(t.message))
}
