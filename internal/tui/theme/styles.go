package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Page chrome
	Brand     lipgloss.Style
	Nav       lipgloss.Style
	NavKey    lipgloss.Style
	Header    lipgloss.Style
	StickyBar lipgloss.Style
	Footer    lipgloss.Style

	// Calls to action
	CTA        lipgloss.Style
	CTAFocused lipgloss.Style

	// Modal
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	Badge          lipgloss.Style
	Subtitle       lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldLabelOn   lipgloss.Style
	FieldHint      lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	OptionFocused  lipgloss.Style
	Notice         lipgloss.Style
	NoticeTitle    lipgloss.Style
	ErrorText      lipgloss.Style
	SuccessTitle   lipgloss.Style
	DotOn          lipgloss.Style
	DotOff         lipgloss.Style
	Separator      lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Background while the modal is open
	Dimmed lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)

	return &Styles{
		Brand:     lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Nav:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		NavKey:    lipgloss.NewStyle().Foreground(c(t.Accent)).Bold(true),
		Header:    lipgloss.NewStyle().Padding(0, 1),
		StickyBar: lipgloss.NewStyle().Padding(0, 1).Background(c(t.BgSurface)),
		Footer:    lipgloss.NewStyle().Foreground(c(t.FgMuted)).Italic(true),

		CTA: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgOverlay)).
			Padding(0, 2),
		CTAFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Primary)).
			Bold(true).
			Padding(0, 2),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Primary)).
			Background(c(t.BgSurface)).
			Padding(1, 2),
		ModalTitle:     lipgloss.NewStyle().Foreground(c(t.FgBright)).Bold(true),
		Badge:          lipgloss.NewStyle().Foreground(c(t.Accent)).Background(c(t.BgOverlay)).Padding(0, 1),
		Subtitle:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		FieldLabel:     lipgloss.NewStyle().Foreground(c(t.FgBase)).Bold(true),
		FieldLabelOn:   lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		FieldHint:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Option:         lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Padding(0, 1),
		OptionSelected: lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Accent)).Padding(0, 1),
		OptionFocused:  lipgloss.NewStyle().Foreground(c(t.FgBright)).Underline(true).Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(c(t.Secondary)).
			PaddingLeft(1),
		NoticeTitle:  lipgloss.NewStyle().Foreground(c(t.FgBright)).Bold(true),
		ErrorText:    lipgloss.NewStyle().Foreground(c(t.Error)),
		SuccessTitle: lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),
		DotOn:        lipgloss.NewStyle().Foreground(c(t.Primary)),
		DotOff:       lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Separator:    lipgloss.NewStyle().Foreground(c(t.BgOverlay)),

		ButtonNormal:   button.Foreground(c(t.FgBase)).Background(c(t.BgOverlay)),
		ButtonDisabled: button.Foreground(c(t.FgMuted)).Background(c(t.BgBase)),
		ButtonFocused:  button.Foreground(c(t.BgBase)).Background(c(t.Primary)).Bold(true),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgOverlay)),

		Dimmed: lipgloss.NewStyle().Faint(true),
	}
}
