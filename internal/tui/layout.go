package tui

import uv "github.com/charmbracelet/ultraviolet"

// Fixed row heights of the page chrome.
const (
	HeaderHeight = 2 // brand + nav, then a rule
	StickyHeight = 1
	HintsHeight  = 1

	// ModalMaxWidth caps the modal on wide terminals.
	ModalMaxWidth = 68
)

// Layout defines the rectangular regions of the screen.
type Layout struct {
	Area   uv.Rectangle
	Header uv.Rectangle
	Page   uv.Rectangle
	Sticky uv.Rectangle
	Hints  uv.Rectangle
}

// CalculateLayout splits the terminal into header, page, sticky bar and
// hints. The page keeps at least one row.
func CalculateLayout(width, height int) Layout {
	area := uv.Rectangle{
		Max: uv.Position{X: width, Y: height},
	}

	chrome := HeaderHeight + StickyHeight + HintsHeight
	if height-chrome < 1 {
		return Layout{Area: area, Page: area}
	}

	header, rest := uv.SplitVertical(area, uv.Fixed(HeaderHeight))
	pageRect, bottom := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-StickyHeight-HintsHeight))
	sticky, hints := uv.SplitVertical(bottom, uv.Fixed(StickyHeight))

	return Layout{
		Area:   area,
		Header: header,
		Page:   pageRect,
		Sticky: sticky,
		Hints:  hints,
	}
}

// ModalWidth returns the modal's outer width for a terminal width.
func ModalWidth(width int) int {
	w := width - 4
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}
