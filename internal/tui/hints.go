package tui

import (
	"strings"

	"github.com/emony/landing/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDown    = "↑/↓"
	KeyLeftRight = "←/→"
	KeyEnter     = "enter"
	KeyEsc       = "esc"
	KeyTab       = "tab"
	KeyQuit      = "q"
	KeySections  = "1-4"
)

// RenderHintBar renders key-description pairs separated by " . ".
// Example: RenderHintBar("tab", "siguiente", "esc", "cerrar")
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, s.HintKey.Render(pairs[i])+" "+s.HintDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, " "+s.HintSeparator.Render(".")+" ")
}

// HintPage returns the hints shown while browsing the page.
func HintPage() string {
	return RenderHintBar(
		KeyTab, "botones",
		KeyEnter, "abrir",
		KeyUpDown, "desplazar",
		KeySections, "secciones",
		KeyQuit, "salir",
	)
}

// HintForm returns the hints shown while a form is open.
func HintForm() string {
	return RenderHintBar(
		KeyTab, "siguiente campo",
		KeyLeftRight, "opción",
		KeyEnter, "continuar",
		KeyEsc, "cerrar",
	)
}

// HintSuccess returns the hints shown on the success view.
func HintSuccess() string {
	return RenderHintBar(KeyEnter, "cerrar", KeyEsc, "cerrar")
}
