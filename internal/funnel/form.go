package funnel

// Form is the state of one multi-step form for the lifetime of a modal session.
// Field writes are never validated; CanAdvance is evaluated when navigating.
// A Form is not safe for concurrent use; it belongs to the UI event loop.
type Form struct {
	kind    Kind
	values  Values
	step    int
	loading bool
}

// NewForm creates a form on step 1 with the schema defaults applied.
func NewForm(kind Kind) *Form {
	values := make(Values)
	for _, f := range Fields(kind) {
		if f.Default != "" {
			values[f.Name] = f.Default
		}
	}
	return &Form{
		kind:   kind,
		values: values,
		step:   1,
	}
}

// Kind returns the funnel this form belongs to.
func (f *Form) Kind() Kind { return f.kind }

// Step returns the current 1-based step.
func (f *Form) Step() int { return f.step }

// Loading reports whether a submission is in flight.
func (f *Form) Loading() bool { return f.loading }

// Value returns the current value of a field.
func (f *Form) Value(name string) string { return f.values[name] }

// Values returns a copy of all field values.
func (f *Form) Values() Values {
	out := make(Values, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// SetField overwrites one field. Names outside the kind's schema are ignored.
func (f *Form) SetField(name, value string) {
	if _, ok := FieldByName(f.kind, name); !ok {
		return
	}
	f.values[name] = value
}

// CanAdvance reports whether the current step's required fields are complete.
func (f *Form) CanAdvance() bool {
	return CanAdvance(f.kind, f.step, f.values)
}

// IsFinalStep reports whether the form is on its last step.
func (f *Form) IsFinalStep() bool {
	return f.step == TotalSteps
}

// Advance moves to the next step. It does nothing and returns false when the
// current step is incomplete, the form is on its last step, or a submission
// is in flight.
func (f *Form) Advance() bool {
	if f.loading || f.step >= TotalSteps || !f.CanAdvance() {
		return false
	}
	f.step++
	return true
}

// Retreat moves to the previous step. It does nothing and returns false on
// step 1 or while a submission is in flight.
func (f *Form) Retreat() bool {
	if f.loading || f.step <= 1 {
		return false
	}
	f.step--
	return true
}

// BeginSubmit marks the form as loading and returns a snapshot of its values.
// It returns false without changing anything unless the form is on its final
// step, that step is complete, and no submission is already in flight.
func (f *Form) BeginSubmit() (Values, bool) {
	if f.loading || !f.IsFinalStep() || !f.CanAdvance() {
		return nil, false
	}
	f.loading = true
	return f.Values(), true
}

// FinishSubmit clears the loading flag.
func (f *Form) FinishSubmit() {
	f.loading = false
}
