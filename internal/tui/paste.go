package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizePaste strips escape sequences and control characters from pasted
// content, normalizes line endings and trims trailing whitespace. Newlines and
// tabs survive for the note field.
func SanitizePaste(content string) string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var b strings.Builder
	for _, r := range content {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t\n")
}

// singleLine collapses a paste into one line for text inputs.
func singleLine(content string) string {
	return strings.Join(strings.Fields(content), " ")
}

// numericOnly keeps the characters a numeric field accepts, so "S/ 1,500"
// pastes as "1500".
func numericOnly(content string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}
		return -1
	}, content)
}
