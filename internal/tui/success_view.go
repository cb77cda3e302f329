package tui

import (
	"strings"

	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/tui/theme"
)

// SuccessView renders the completion message of a funnel.
type SuccessView struct {
	width int
}

// NewSuccessView creates a success view.
func NewSuccessView() *SuccessView {
	return &SuccessView{width: ModalMaxWidth}
}

// SetWidth sets the outer width of the modal.
func (v *SuccessView) SetWidth(width int) {
	v.width = width
}

// View renders msg, the shared next steps block and the close button.
func (v *SuccessView) View(msg funnel.Message) string {
	s := theme.Current().S()
	inner := max(v.width-6, 10)

	next := s.NoticeTitle.Render(funnel.NextSteps.Title) + "\n" +
		s.FieldHint.Width(inner-2).Render(funnel.NextSteps.Body)

	return strings.Join([]string{
		s.SuccessTitle.Render("✓ " + msg.Title),
		"",
		s.Subtitle.Width(inner).Render(msg.Body),
		"",
		s.Notice.Render(next),
		"",
		NewButtonBar([]Button{{Label: funnel.CloseLabel, State: ButtonFocused}}, inner).Render(),
	}, "\n")
}
