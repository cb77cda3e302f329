// Package page describes the landing page variants: their sections, the
// navigation anchors and what every call-to-action does.
package page

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emony/landing/internal/funnel"
	"github.com/gosimple/slug"
)

// ErrUnknownVariant is returned by Lookup for a name that is not registered.
var ErrUnknownVariant = errors.New("unknown page variant")

// ExternalAppURL is the hosted application some CTAs hand the visitor to.
const ExternalAppURL = "https://app.emony.info/"

// DefaultVariant is the variant served when none is configured.
const DefaultVariant = "hibrido"

// ActionKind tells how a CTA is handled.
type ActionKind int

const (
	ActionOpenModal ActionKind = iota // open the modal for a funnel
	ActionRedirect                    // leave the page for an external URL
	ActionScroll                      // jump to a section anchor
)

// Action is what happens when a CTA is activated.
type Action struct {
	Kind   ActionKind
	Funnel funnel.Kind
	URL    string
	Anchor string
}

// OpenModal returns an action opening the modal for kind.
func OpenModal(kind funnel.Kind) Action {
	return Action{Kind: ActionOpenModal, Funnel: kind}
}

// Redirect returns an action leaving the page for url.
func Redirect(url string) Action {
	return Action{Kind: ActionRedirect, URL: url}
}

// ScrollTo returns an action that scrolls to a section anchor.
func ScrollTo(anchor string) Action {
	return Action{Kind: ActionScroll, Anchor: anchor}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionOpenModal:
		return "modal:" + a.Funnel.String()
	case ActionRedirect:
		return "redirect:" + a.URL
	case ActionScroll:
		return "scroll:#" + a.Anchor
	default:
		return "unknown"
	}
}

// CTA is a labeled, activatable control.
type CTA struct {
	Label  string
	Action Action
}

// Section is one block of the page.
type Section struct {
	ID    string
	Title string
	Body  string // markdown
	CTAs  []CTA
}

// NavItem links a header label to a section anchor.
type NavItem struct {
	Label  string
	Anchor string
}

// Variant is one composition of the landing page.
type Variant struct {
	Name     string
	Brand    string
	Tagline  string
	Nav      []NavItem
	Header   CTA
	Sticky   []CTA
	Footer   string
	Sections []Section
}

// Section returns the section with the given anchor.
func (v Variant) Section(id string) (Section, bool) {
	for _, s := range v.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// CTAs returns every CTA in page order: header, sections, sticky bar.
func (v Variant) CTAs() []CTA {
	out := []CTA{v.Header}
	for _, s := range v.Sections {
		out = append(out, s.CTAs...)
	}
	return append(out, v.Sticky...)
}

// WithExternalURL returns a copy of v in which every redirect to
// ExternalAppURL leads to url instead.
func (v Variant) WithExternalURL(url string) Variant {
	if url == "" || url == ExternalAppURL {
		return v
	}
	swap := func(c CTA) CTA {
		if c.Action.Kind == ActionRedirect && c.Action.URL == ExternalAppURL {
			c.Action.URL = url
		}
		return c
	}
	swapAll := func(ctas []CTA) []CTA {
		out := make([]CTA, len(ctas))
		for i, c := range ctas {
			out[i] = swap(c)
		}
		return out
	}

	v.Header = swap(v.Header)
	v.Sticky = swapAll(v.Sticky)
	sections := make([]Section, len(v.Sections))
	for i, s := range v.Sections {
		s.CTAs = swapAll(s.CTAs)
		sections[i] = s
	}
	v.Sections = sections
	return v
}

// Anchor turns a section title into its anchor ID.
func Anchor(title string) string {
	return slug.Make(title)
}

var registry = map[string]Variant{}

func register(v Variant) {
	if _, dup := registry[v.Name]; dup {
		panic(fmt.Sprintf("page: variant %q registered twice", v.Name))
	}
	registry[v.Name] = v
}

// Lookup returns the named variant.
func Lookup(name string) (Variant, error) {
	v, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names lists the registered variants in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
