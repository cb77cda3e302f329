package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T, variant string) *PageView {
	t.Helper()
	v, err := page.Lookup(variant)
	require.NoError(t, err)
	p := NewPageView(v, page.NewRenderer(page.StyleASCII))
	p.SetSize(80, 12)
	return p
}

func TestPageView_FocusRingWraps(t *testing.T) {
	p := newTestPage(t, "hibrido")
	ctas := p.variant.CTAs()

	require.Equal(t, ctas[0], p.Focused())
	for i := 1; i < len(ctas); i++ {
		p.Update(testfixtures.Key("tab"))
		require.Equal(t, ctas[i], p.Focused(), "tab %d", i)
	}
	p.Update(testfixtures.Key("tab"))
	require.Equal(t, ctas[0], p.Focused())

	p.Update(testfixtures.Key("shift+tab"))
	require.Equal(t, ctas[len(ctas)-1], p.Focused())
}

func TestPageView_EnterActivatesFocused(t *testing.T) {
	p := newTestPage(t, "hibrido")

	msgs := testfixtures.Exec(p.Update(testfixtures.Key("enter")))
	require.Len(t, msgs, 1)
	act, ok := msgs[0].(CTAActivatedMsg)
	require.True(t, ok)
	require.Equal(t, p.variant.Header, act.CTA)
}

func TestPageView_NavKeysScrollToSections(t *testing.T) {
	p := newTestPage(t, "venta")

	for i, n := range p.variant.Nav {
		key := string(rune('1' + i))
		p.Update(testfixtures.Key(key))

		off, ok := p.Offset(n.Anchor)
		require.True(t, ok, n.Anchor)
		require.Greater(t, off, 0)
		if p.YOffset() == off {
			require.Contains(t, ansi.Strip(p.View()), n.Label[:4], "section %s", n.Anchor)
		} else {
			require.True(t, p.viewport.AtBottom(), "section %s", n.Anchor)
		}
	}

	before := p.YOffset()
	p.Update(testfixtures.Key("9"))
	require.Equal(t, before, p.YOffset(), "unused nav slot leaves the scroll alone")
}

func TestPageView_FocusScrollsCTAIntoView(t *testing.T) {
	p := newTestPage(t, "venta")

	// Walk to the last body CTA (the model section's).
	bodyCTAs := 0
	for _, s := range p.variant.Sections {
		bodyCTAs += len(s.CTAs)
	}
	for i := 0; i < bodyCTAs; i++ {
		p.Update(testfixtures.Key("tab"))
	}

	slot := p.slots[p.focus]
	require.Equal(t, placeBody, slot.place)
	require.GreaterOrEqual(t, slot.line, p.YOffset())
	require.Less(t, slot.line, p.YOffset()+p.height)
	require.Contains(t, ansi.Strip(p.View()), "[ "+slot.cta.Label+" ]")
}

func TestPageView_HeaderAndSticky(t *testing.T) {
	p := newTestPage(t, "hibrido")

	header := ansi.Strip(p.HeaderView(100))
	require.Contains(t, header, "Emony")
	require.Contains(t, header, "1 Problema")
	require.Contains(t, header, "[ Unirme al user testing ]")

	sticky := ansi.Strip(p.StickyView(80))
	require.Contains(t, sticky, "[ Tester ]")
	require.Contains(t, sticky, "[ Solicitar ]")
}

func TestPageView_ScrollToUnknownAnchor(t *testing.T) {
	p := newTestPage(t, "hibrido")
	p.ScrollTo("nope")
	require.Equal(t, 0, p.YOffset())
}
