package tui

import (
	"fmt"
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/modal"
	"github.com/emony/landing/internal/submit"
	"github.com/emony/landing/internal/tui/theme"
)

// loadingLabel replaces the submit label while a submission is in flight.
const loadingLabel = "Enviando…"

// Back and next button labels.
const (
	backLabel = "Atrás"
	nextLabel = "Continuar"
)

// control is the editor of one field on the current step.
type control struct {
	field funnel.Field
	input textinput.Model
	note  textarea.Model
}

// FormModal renders and edits the form of the modal's current session.
// Controls are rebuilt whenever the session or the step changes, reading
// their values back from the form, so the form stays the single source of
// truth.
type FormModal struct {
	ctrl *modal.Controller

	session  uint64
	step     int
	controls []control
	focus    int // 0..len(controls)-1 fields, then back and next buttons

	width int
}

// NewFormModal creates a form modal bound to ctrl.
func NewFormModal(ctrl *modal.Controller) *FormModal {
	return &FormModal{ctrl: ctrl, width: ModalMaxWidth}
}

// SetWidth sets the outer width of the modal.
func (m *FormModal) SetWidth(width int) {
	m.width = width
	for i := range m.controls {
		m.controls[i].input.SetWidth(m.innerWidth())
		m.controls[i].note.SetWidth(m.innerWidth())
	}
}

func (m *FormModal) innerWidth() int {
	// border + horizontal padding of the container
	return max(m.width-6, 10)
}

// Sync rebuilds the controls if the session or the step moved and returns
// the command focusing the first field.
func (m *FormModal) Sync() tea.Cmd {
	form := m.ctrl.Form()
	if form == nil {
		m.controls = nil
		return nil
	}
	if m.session == m.ctrl.Session() && m.step == form.Step() && m.controls != nil {
		return nil
	}
	m.session = m.ctrl.Session()
	m.step = form.Step()
	m.build(form)
	m.focus = 0
	return m.applyFocus()
}

func (m *FormModal) build(form *funnel.Form) {
	fields := funnel.StepFields(form.Kind(), form.Step())
	m.controls = make([]control, 0, len(fields))
	for _, f := range fields {
		c := control{field: f}
		switch f.Widget {
		case funnel.WidgetText:
			in := textinput.New()
			in.Prompt = "› "
			in.Placeholder = f.For(form.Values()).Placeholder
			in.CharLimit = f.MaxLen()
			in.SetWidth(m.innerWidth())
			in.SetValue(form.Value(f.Name))
			c.input = in
		case funnel.WidgetNote:
			ta := textarea.New()
			ta.Placeholder = f.Placeholder
			ta.ShowLineNumbers = false
			ta.Prompt = ""
			ta.CharLimit = f.MaxLen()
			ta.SetWidth(m.innerWidth())
			ta.SetHeight(3)
			ta.SetValue(form.Value(f.Name))
			c.note = ta
		}
		m.controls = append(m.controls, c)
	}
}

// Focus returns the index of the focused zone.
func (m *FormModal) Focus() int { return m.focus }

// backZone and nextZone are the focus indexes of the buttons.
func (m *FormModal) backZone() int { return len(m.controls) }
func (m *FormModal) nextZone() int { return len(m.controls) + 1 }

func (m *FormModal) zones() int { return len(m.controls) + 2 }

// applyFocus focuses the control under m.focus and blurs the rest.
func (m *FormModal) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.controls {
		c := &m.controls[i]
		switch c.field.Widget {
		case funnel.WidgetText:
			if i == m.focus {
				cmd = c.input.Focus()
			} else {
				c.input.Blur()
			}
		case funnel.WidgetNote:
			if i == m.focus {
				cmd = c.note.Focus()
			} else {
				c.note.Blur()
			}
		}
	}
	return cmd
}

func (m *FormModal) moveFocus(delta int) tea.Cmd {
	n := m.zones()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.applyFocus()
}

// Update handles a key while the form is showing. Keys are ignored while a
// submission is in flight.
func (m *FormModal) Update(msg tea.KeyPressMsg) tea.Cmd {
	form := m.ctrl.Form()
	if form == nil || form.Loading() {
		return nil
	}
	if cmd := m.Sync(); cmd != nil {
		return cmd
	}

	key := msg.String()
	switch key {
	case "tab", "down":
		if key == "down" && m.onNote() {
			break
		}
		return m.moveFocus(1)
	case "shift+tab", "up":
		if key == "up" && m.onNote() {
			break
		}
		return m.moveFocus(-1)
	}

	switch {
	case m.focus == m.backZone():
		if key == "enter" || key == "space" {
			return m.back(form)
		}
		if key == "right" {
			return m.moveFocus(1)
		}
		return nil
	case m.focus == m.nextZone():
		if key == "enter" || key == "space" {
			return m.next(form)
		}
		if key == "left" {
			return m.moveFocus(-1)
		}
		return nil
	}

	c := &m.controls[m.focus]
	switch c.field.Widget {
	case funnel.WidgetChoice:
		switch key {
		case "left", "h":
			m.cycleOption(form, c, -1)
		case "right", "l", "space":
			m.cycleOption(form, c, 1)
		case "enter":
			return m.moveFocus(1)
		}
		return nil

	case funnel.WidgetText:
		if key == "enter" {
			if form.CanAdvance() && m.focus == len(m.controls)-1 {
				return m.next(form)
			}
			return m.moveFocus(1)
		}
		if c.field.Numeric && !numericKey(msg) {
			return nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		form.SetField(c.field.Name, c.input.Value())
		return cmd

	case funnel.WidgetNote:
		var cmd tea.Cmd
		c.note, cmd = c.note.Update(msg)
		form.SetField(c.field.Name, c.note.Value())
		return cmd
	}
	return nil
}

// Paste inserts pasted text into the focused field. Text fields receive a
// single line and numeric fields only digits.
func (m *FormModal) Paste(msg tea.PasteMsg) tea.Cmd {
	form := m.ctrl.Form()
	if form == nil || form.Loading() {
		return nil
	}
	if cmd := m.Sync(); cmd != nil {
		return cmd
	}
	if m.focus >= len(m.controls) {
		return nil
	}

	content := SanitizePaste(msg.Content)
	c := &m.controls[m.focus]
	var cmd tea.Cmd
	switch c.field.Widget {
	case funnel.WidgetText:
		content = singleLine(content)
		if c.field.Numeric {
			content = numericOnly(content)
		}
		if content == "" {
			return nil
		}
		c.input, cmd = c.input.Update(tea.PasteMsg{Content: content})
		form.SetField(c.field.Name, c.input.Value())
	case funnel.WidgetNote:
		if content == "" {
			return nil
		}
		c.note, cmd = c.note.Update(tea.PasteMsg{Content: content})
		form.SetField(c.field.Name, c.note.Value())
	}
	return cmd
}

func (m *FormModal) onNote() bool {
	return m.focus < len(m.controls) && m.controls[m.focus].field.Widget == funnel.WidgetNote
}

// numericKey reports whether msg may edit a numeric field: digits and
// editing keys pass, other printable text does not.
func numericKey(msg tea.KeyPressMsg) bool {
	if msg.Text == "" {
		return true
	}
	for _, r := range msg.Text {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

// cycleOption moves the selection of a choice field. With nothing selected,
// forward picks the first option and backward the last.
func (m *FormModal) cycleOption(form *funnel.Form, c *control, delta int) {
	opts := c.field.Options
	if len(opts) == 0 {
		return
	}
	cur := -1
	for i, o := range opts {
		if o.Value == form.Value(c.field.Name) {
			cur = i
		}
	}
	var next int
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = len(opts) - 1
	default:
		next = ((cur+delta)%len(opts) + len(opts)) % len(opts)
	}
	form.SetField(c.field.Name, opts[next].Value)
	m.refreshPlaceholders(form)
}

// refreshPlaceholders applies value-dependent presentation, such as the
// loan contact placeholder following the channel.
func (m *FormModal) refreshPlaceholders(form *funnel.Form) {
	for i := range m.controls {
		c := &m.controls[i]
		if c.field.Widget == funnel.WidgetText {
			c.input.Placeholder = c.field.For(form.Values()).Placeholder
		}
	}
}

func (m *FormModal) back(form *funnel.Form) tea.Cmd {
	if !form.Retreat() {
		return nil
	}
	return m.Sync()
}

func (m *FormModal) next(form *funnel.Form) tea.Cmd {
	if !form.CanAdvance() {
		return nil
	}
	if form.IsFinalStep() {
		return func() tea.Msg { return SubmitRequestedMsg{} }
	}
	if !form.Advance() {
		return nil
	}
	return m.Sync()
}

// View renders the modal body. spin is the current spinner frame, shown
// next to the submit label while loading.
func (m *FormModal) View(spin string) string {
	form := m.ctrl.Form()
	if form == nil {
		return ""
	}
	m.Sync()

	s := theme.Current().S()
	kind := form.Kind()
	cp := funnel.CopyFor(kind)
	values := form.Values()
	inner := m.innerWidth()

	var b []string
	b = append(b,
		s.Badge.Render(cp.Badge),
		"",
		s.ModalTitle.Render(cp.Title),
		s.Subtitle.Width(inner).Render(cp.Subtitle),
		"",
		m.progress(form.Step()),
		"",
	)

	for i, c := range m.controls {
		f := c.field.For(values)
		label := s.FieldLabel
		if i == m.focus {
			label = s.FieldLabelOn
		}
		b = append(b, label.Render(f.Label))

		switch f.Widget {
		case funnel.WidgetText:
			b = append(b, c.input.View())
		case funnel.WidgetNote:
			b = append(b, c.note.View())
		case funnel.WidgetChoice:
			b = append(b, m.optionRow(f, form.Value(f.Name), i == m.focus))
		}
		if f.Hint != "" {
			b = append(b, s.FieldHint.Width(inner).Render(f.Hint))
		}
		b = append(b, "")
	}

	if form.IsFinalStep() && cp.Notice.Title != "" {
		notice := s.NoticeTitle.Render(cp.Notice.Title) + "\n" + s.FieldHint.Width(inner-2).Render(cp.Notice.Body)
		b = append(b, s.Notice.Render(notice), "")
	}

	if err := m.ctrl.Err(); err != nil {
		b = append(b, s.ErrorText.Width(inner).Render("No pudimos enviar tu solicitud. "+submit.Explain(err)), "")
	}

	b = append(b, m.buttons(form, spin))
	return strings.Join(b, "\n")
}

func (m *FormModal) progress(step int) string {
	s := theme.Current().S()
	dots := make([]string, 0, funnel.TotalSteps)
	for i := 1; i <= funnel.TotalSteps; i++ {
		if i <= step {
			dots = append(dots, s.DotOn.Render("●"))
		} else {
			dots = append(dots, s.DotOff.Render("○"))
		}
	}
	return strings.Join(dots, " ") + "  " + s.FieldHint.Render(fmt.Sprintf("Paso %d de %d", step, funnel.TotalSteps))
}

func (m *FormModal) optionRow(f funnel.Field, selected string, focused bool) string {
	s := theme.Current().S()
	opts := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		switch {
		case o.Value == selected:
			opts = append(opts, s.OptionSelected.Render(o.Label))
		case focused:
			opts = append(opts, s.OptionFocused.Render(o.Label))
		default:
			opts = append(opts, s.Option.Render(o.Label))
		}
	}
	return lipgloss.NewStyle().Width(m.innerWidth()).Render(strings.Join(opts, " "))
}

func (m *FormModal) buttons(form *funnel.Form, spin string) string {
	canNext := form.CanAdvance() && !form.Loading()

	label := nextLabel
	if form.IsFinalStep() {
		label = funnel.CopyFor(form.Kind()).SubmitLabel
	}
	if form.Loading() {
		label = loadingLabel
		if spin != "" {
			label = spin + " " + label
		}
	}

	bar := NewButtonBar([]Button{
		{Label: backLabel, State: buttonState(form.Step() > 1 && !form.Loading(), m.focus == m.backZone())},
		{Label: label, State: buttonState(canNext, m.focus == m.nextZone())},
	}, m.innerWidth())
	return bar.Render()
}
