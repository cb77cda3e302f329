package funnel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillLoanStep(f *Form, step int) {
	switch step {
	case 1:
		f.SetField(FieldAmount, "500")
		f.SetField(FieldTerm, "30")
	case 2:
		f.SetField(FieldPurpose, "salud")
	case 3:
		f.SetField(FieldContact, "99999999")
	}
}

func TestNewFormDefaults(t *testing.T) {
	t.Parallel()

	f := NewForm(LoanRequest)
	require.Equal(t, 1, f.Step())
	require.False(t, f.Loading())
	require.Equal(t, ChannelWhatsApp, f.Value(FieldChannel))

	tester := NewForm(TesterSignup)
	require.Empty(t, tester.Values())
}

func TestFormAdvanceGatedByValidation(t *testing.T) {
	t.Parallel()

	f := NewForm(LoanRequest)
	f.SetField(FieldAmount, "")
	require.False(t, f.Advance())
	require.Equal(t, 1, f.Step())

	fillLoanStep(f, 1)
	require.True(t, f.Advance())
	require.Equal(t, 2, f.Step())
}

func TestFormStepBounds(t *testing.T) {
	t.Parallel()

	f := NewForm(LoanRequest)
	require.False(t, f.Retreat())
	require.Equal(t, 1, f.Step())

	for step := 1; step <= TotalSteps; step++ {
		fillLoanStep(f, step)
		f.Advance()
	}
	require.Equal(t, TotalSteps, f.Step())
	require.True(t, f.IsFinalStep())

	require.False(t, f.Advance())
	require.Equal(t, TotalSteps, f.Step())

	require.True(t, f.Retreat())
	require.True(t, f.Retreat())
	require.False(t, f.Retreat())
	require.Equal(t, 1, f.Step())
}

func TestFormRetreatKeepsValues(t *testing.T) {
	t.Parallel()

	f := NewForm(TesterSignup)
	f.SetField(FieldName, "Abel")
	f.SetField(FieldAgeRange, "18-24")
	require.True(t, f.Advance())
	require.True(t, f.Retreat())
	require.Equal(t, "Abel", f.Value(FieldName))
}

func TestFormSetFieldIgnoresUnknownNames(t *testing.T) {
	t.Parallel()

	f := NewForm(TesterSignup)
	f.SetField(FieldAmount, "500")
	require.Equal(t, "", f.Value(FieldAmount))

	f.SetField(FieldName, "   ")
	require.Equal(t, "   ", f.Value(FieldName), "writes are stored verbatim")
}

func TestFormBeginSubmit(t *testing.T) {
	t.Parallel()

	t.Run("not on final step", func(t *testing.T) {
		t.Parallel()
		f := NewForm(LoanRequest)
		fillLoanStep(f, 1)
		_, ok := f.BeginSubmit()
		require.False(t, ok)
		require.False(t, f.Loading())
	})

	t.Run("final step incomplete", func(t *testing.T) {
		t.Parallel()
		f := NewForm(LoanRequest)
		fillLoanStep(f, 1)
		f.Advance()
		fillLoanStep(f, 2)
		f.Advance()
		f.SetField(FieldContact, "123")
		_, ok := f.BeginSubmit()
		require.False(t, ok)
		require.False(t, f.Loading())
	})

	t.Run("accepted once", func(t *testing.T) {
		t.Parallel()
		f := NewForm(LoanRequest)
		for step := 1; step <= TotalSteps; step++ {
			fillLoanStep(f, step)
			f.Advance()
		}
		values, ok := f.BeginSubmit()
		require.True(t, ok)
		require.True(t, f.Loading())
		require.Equal(t, "500", values.Get(FieldAmount))

		_, again := f.BeginSubmit()
		require.False(t, again)

		f.FinishSubmit()
		require.False(t, f.Loading())
	})
}

func TestFormNavigationBlockedWhileLoading(t *testing.T) {
	t.Parallel()

	f := NewForm(TesterSignup)
	f.SetField(FieldName, "Abel")
	f.SetField(FieldAgeRange, "18-24")
	f.Advance()
	f.SetField(FieldDevice, "android")
	f.SetField(FieldContact, "a@b.com")
	f.Advance()
	f.SetField(FieldUsesFinanceApps, "si")

	_, ok := f.BeginSubmit()
	require.True(t, ok)

	require.False(t, f.Retreat())
	require.False(t, f.Advance())
	require.Equal(t, 3, f.Step())
}

func TestFormValuesIsACopy(t *testing.T) {
	t.Parallel()

	f := NewForm(TesterSignup)
	f.SetField(FieldName, "Abel")
	v := f.Values()
	v[FieldName] = "Otro"
	require.Equal(t, "Abel", f.Value(FieldName))
}
