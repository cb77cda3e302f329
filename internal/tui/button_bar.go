package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/emony/landing/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar lays out a row of buttons.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button, width int) *ButtonBar {
	return &ButtonBar{buttons: buttons, width: width}
}

// Render renders the buttons right-aligned within the bar width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Right, strings.Join(rendered, ""))
}

// buttonState picks the state of a button from whether it is usable and
// whether it holds focus. A disabled button never shows focus.
func buttonState(enabled, focused bool) ButtonState {
	switch {
	case !enabled:
		return ButtonDisabled
	case focused:
		return ButtonFocused
	default:
		return ButtonNormal
	}
}
