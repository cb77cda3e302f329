package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/tui/theme"
)

// ctaPlace tells where a CTA is drawn.
type ctaPlace int

const (
	placeHeader ctaPlace = iota
	placeBody
	placeSticky
)

// ctaSlot is one entry of the focus ring.
type ctaSlot struct {
	cta   page.CTA
	place ctaPlace
	line  int // content line, for placeBody
}

// PageView shows a landing page variant: the header with the nav anchors,
// the scrollable body and the sticky CTA bar. Tab cycles focus over every
// CTA in page order and enter activates the focused one.
type PageView struct {
	variant  page.Variant
	renderer *page.Renderer
	viewport viewport.Model

	slots   []ctaSlot
	focus   int
	offsets map[string]int

	width  int
	height int
	built  bool
}

// NewPageView creates a page view for v.
func NewPageView(v page.Variant, r *page.Renderer) *PageView {
	p := &PageView{
		variant:  v,
		renderer: r,
		viewport: viewport.New(),
		offsets:  map[string]int{},
	}
	p.viewport.MouseWheelEnabled = true
	p.viewport.MouseWheelDelta = 3

	p.slots = append(p.slots, ctaSlot{cta: v.Header, place: placeHeader})
	for _, s := range v.Sections {
		for _, c := range s.CTAs {
			p.slots = append(p.slots, ctaSlot{cta: c, place: placeBody})
		}
	}
	for _, c := range v.Sticky {
		p.slots = append(p.slots, ctaSlot{cta: c, place: placeSticky})
	}
	return p
}

// SetSize sets the body size and re-renders the content.
func (p *PageView) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	p.width, p.height = width, height
	p.viewport.SetWidth(width)
	p.viewport.SetHeight(height)
	p.rebuild()
}

// Focused returns the focused CTA.
func (p *PageView) Focused() page.CTA {
	return p.slots[p.focus].cta
}

// YOffset returns the scroll position of the body.
func (p *PageView) YOffset() int {
	return p.viewport.YOffset()
}

// Offset returns the content line where a section starts.
func (p *PageView) Offset(anchor string) (int, bool) {
	off, ok := p.offsets[anchor]
	return off, ok
}

// Update handles keys and mouse wheel events for the page.
func (p *PageView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}

	switch key.String() {
	case "tab":
		p.moveFocus(1)
		return nil
	case "shift+tab":
		p.moveFocus(-1)
		return nil
	case "enter", "space":
		cta := p.Focused()
		return func() tea.Msg { return CTAActivatedMsg{CTA: cta} }
	case "home":
		p.viewport.GotoTop()
		return nil
	case "end":
		p.viewport.GotoBottom()
		return nil
	}

	if n, ok := navIndex(key.String()); ok && n < len(p.variant.Nav) {
		p.ScrollTo(p.variant.Nav[n].Anchor)
		return nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// navIndex maps the digit keys 1-9 to nav positions.
func navIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// ScrollTo brings a section to the top of the body. Unknown anchors are
// ignored.
func (p *PageView) ScrollTo(anchor string) {
	if off, ok := p.offsets[anchor]; ok {
		p.viewport.SetYOffset(off)
	}
}

func (p *PageView) moveFocus(delta int) {
	n := len(p.slots)
	p.focus = ((p.focus+delta)%n + n) % n
	p.rebuild()
	p.EnsureVisible()
}

// EnsureVisible scrolls the body so a focused CTA inside it is on screen.
func (p *PageView) EnsureVisible() {
	slot := p.slots[p.focus]
	if slot.place != placeBody {
		return
	}
	top := p.viewport.YOffset()
	switch {
	case slot.line < top:
		p.viewport.SetYOffset(slot.line)
	case slot.line >= top+p.height:
		p.viewport.SetYOffset(slot.line - p.height + 1)
	}
}

// rebuild renders the body with the current focus. The scroll position is
// kept.
func (p *PageView) rebuild() {
	if p.width <= 0 {
		return
	}
	layout := p.renderer.Render(p.variant, p.width)
	s := theme.Current().S()

	var lines []string
	slot := 1 // slot 0 is the header CTA
	for i, block := range layout.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		p.offsets[block.Section.ID] = len(lines)
		lines = append(lines, strings.Split(block.Text, "\n")...)

		if len(block.Section.CTAs) == 0 {
			continue
		}
		line := len(lines) + 1
		lines = append(lines, "")
		var row []string
		for range block.Section.CTAs {
			p.slots[slot].line = line
			row = append(row, p.renderCTA(slot))
			slot++
		}
		lines = append(lines, "  "+strings.Join(row, "  "))
	}
	lines = append(lines, "", s.Footer.Render("  "+p.variant.Footer))

	offset := p.viewport.YOffset()
	p.viewport.SetContent(strings.Join(lines, "\n"))
	if p.built {
		p.viewport.SetYOffset(offset)
	}
	p.built = true
}

func (p *PageView) renderCTA(slot int) string {
	s := theme.Current().S()
	label := "[ " + p.slots[slot].cta.Label + " ]"
	if slot == p.focus {
		return s.CTAFocused.Render(label)
	}
	return s.CTA.Render(label)
}

// HeaderView renders the brand, the numbered nav anchors and the header CTA.
func (p *PageView) HeaderView(width int) string {
	s := theme.Current().S()

	brand := s.Brand.Render(p.variant.Brand)
	nav := make([]string, 0, len(p.variant.Nav))
	for i, n := range p.variant.Nav {
		nav = append(nav, s.NavKey.Render(fmt.Sprint(i+1))+" "+s.Nav.Render(n.Label))
	}
	cta := p.renderCTA(0)

	left := brand + "  " + strings.Join(nav, "  ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(cta) - 2
	if gap < 1 {
		left = brand
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(cta)-2, 1)
	}
	line := s.Header.Render(left + strings.Repeat(" ", gap) + cta)
	rule := s.Separator.Render(strings.Repeat("─", max(width, 0)))
	return ansi.Truncate(line, width, "") + "\n" + rule
}

// StickyView renders the sticky CTA bar.
func (p *PageView) StickyView(width int) string {
	s := theme.Current().S()
	first := len(p.slots) - len(p.variant.Sticky)
	row := make([]string, 0, len(p.variant.Sticky))
	for i := first; i < len(p.slots); i++ {
		row = append(row, p.renderCTA(i))
	}
	bar := lipgloss.PlaceHorizontal(width-2, lipgloss.Center, strings.Join(row, "  "))
	return s.StickyBar.Width(width).Render(bar)
}

// View renders the visible part of the body.
func (p *PageView) View() string {
	return p.viewport.View()
}

// Draw renders the body into the page area.
func (p *PageView) Draw(scr uv.Screen, area uv.Rectangle) {
	DrawText(scr, area, p.View())
}
