package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/emony/landing/internal/tui/theme"
)

// DrawText renders styled text into an area, clipped to it.
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawCentered draws content in the middle of area and returns the
// rectangle it occupies.
func DrawCentered(scr uv.Screen, area uv.Rectangle, content string) uv.Rectangle {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	if w > area.Dx() {
		w = area.Dx()
	}
	if h > area.Dy() {
		h = area.Dy()
	}

	x := area.Min.X + (area.Dx()-w)/2
	y := area.Min.Y + (area.Dy()-h)/2
	rect := uv.Rect(x, y, w, h)
	DrawText(scr, rect, content)
	return rect
}

// Dim strips the colors of s and renders it faint. Used for the page while
// the modal covers it.
func Dim(s string) string {
	return theme.Current().S().Dimmed.Render(ansi.Strip(s))
}
