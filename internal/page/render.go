package page

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/emony/landing/internal/logger"
)

// Glamour styles used by the renderer.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleASCII = "ascii"
	StyleNoTTY = "notty"
)

const maxReadableWidth = 100

// Renderer turns section markdown into terminal text, caching by width.
// It is safe for concurrent use.
type Renderer struct {
	style string

	mu    sync.Mutex
	width int
	term  *glamour.TermRenderer
	cache map[string]string
}

// NewRenderer returns a renderer using a glamour standard style.
func NewRenderer(style string) *Renderer {
	return &Renderer{style: style, cache: make(map[string]string)}
}

// Markdown renders md wrapped to width. Glamour failures fall back to plain
// word wrapping.
func (r *Renderer) Markdown(md string, width int) string {
	if width > maxReadableWidth {
		width = maxReadableWidth
	}
	if width < 20 {
		width = 20
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if width != r.width {
		r.width = width
		r.term = nil
		r.cache = make(map[string]string)
	}
	if out, ok := r.cache[md]; ok {
		return out
	}

	if r.term == nil {
		term, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logger.Warn("markdown renderer unavailable: %v", err)
			return ansi.Wordwrap(md, width, "")
		}
		r.term = term
	}

	out, err := r.term.Render(md)
	if err != nil {
		logger.Warn("rendering markdown: %v", err)
		return ansi.Wordwrap(md, width, "")
	}
	out = strings.Trim(out, "\n")
	r.cache[md] = out
	return out
}

// Section renders one section: its title as a heading followed by its body.
func (r *Renderer) Section(s Section, width int) string {
	return r.Markdown(SectionMarkdown(s), width)
}

// SectionMarkdown returns the markdown source of a section.
func SectionMarkdown(s Section) string {
	return fmt.Sprintf("## %s\n\n%s", s.Title, s.Body)
}

// Document renders the whole variant as a single markdown document with CTAs
// listed under their section. Used for non-interactive output.
func Document(v Variant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", v.Brand, v.Tagline)

	nav := make([]string, 0, len(v.Nav))
	for _, n := range v.Nav {
		nav = append(nav, fmt.Sprintf("%s (#%s)", n.Label, n.Anchor))
	}
	fmt.Fprintf(&b, "%s\n\n", strings.Join(nav, " · "))
	writeCTAs(&b, []CTA{v.Header})

	for _, s := range v.Sections {
		b.WriteString(SectionMarkdown(s))
		b.WriteString("\n")
		writeCTAs(&b, s.CTAs)
	}

	b.WriteString("---\n\n")
	writeCTAs(&b, v.Sticky)
	fmt.Fprintf(&b, "%s\n", v.Footer)
	return b.String()
}

func writeCTAs(b *strings.Builder, ctas []CTA) {
	if len(ctas) == 0 {
		return
	}
	for _, c := range ctas {
		fmt.Fprintf(b, "- [ %s ] → %s\n", c.Label, describe(c.Action))
	}
	b.WriteString("\n")
}

func describe(a Action) string {
	switch a.Kind {
	case ActionOpenModal:
		return "formulario " + a.Funnel.String()
	case ActionRedirect:
		return a.URL
	case ActionScroll:
		return "#" + a.Anchor
	default:
		return "?"
	}
}

// Block is one rendered section.
type Block struct {
	Section Section
	Text    string
}

// Layout is a rendered variant body.
type Layout struct {
	Blocks  []Block
	Text    string
	Offsets map[string]int // section ID → first line in Text
}

// Render renders every section of v at width. Sections are separated by a
// blank line and Offsets records where each one starts.
func (r *Renderer) Render(v Variant, width int) Layout {
	l := Layout{Offsets: make(map[string]int, len(v.Sections))}
	var b strings.Builder
	line := 0
	for i, s := range v.Sections {
		text := r.Section(s, width)
		l.Blocks = append(l.Blocks, Block{Section: s, Text: text})
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}
		l.Offsets[s.ID] = line
		b.WriteString(text)
		line += strings.Count(text, "\n") + 1
	}
	l.Text = b.String()
	return l
}
