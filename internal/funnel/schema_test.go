package funnel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryStepHasFields(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		for step := 1; step <= TotalSteps; step++ {
			require.NotEmpty(t, StepFields(k, step), "%s step %d", k, step)
		}
	}
}

func TestSchemaMatchesFormState(t *testing.T) {
	t.Parallel()

	names := func(k Kind) []string {
		var out []string
		for _, f := range Fields(k) {
			out = append(out, f.Name)
		}
		return out
	}

	require.ElementsMatch(t,
		[]string{FieldAmount, FieldTerm, FieldPurpose, FieldNote, FieldChannel, FieldContact},
		names(LoanRequest))
	require.ElementsMatch(t,
		[]string{FieldName, FieldAgeRange, FieldDevice, FieldContact, FieldUsesFinanceApps, FieldNote},
		names(TesterSignup))
}

func TestLoanContactFollowsChannel(t *testing.T) {
	t.Parallel()

	contact, ok := FieldByName(LoanRequest, FieldContact)
	require.True(t, ok)

	wa := contact.For(Values{FieldChannel: ChannelWhatsApp})
	require.Equal(t, "WhatsApp", wa.Label)
	require.Equal(t, "+51 999 999 999", wa.Placeholder)

	email := contact.For(Values{FieldChannel: ChannelEmail})
	require.Equal(t, "Email", email.Label)
	require.Equal(t, "correo@ejemplo.com", email.Placeholder)

	tester, ok := FieldByName(TesterSignup, FieldContact)
	require.True(t, ok)
	require.Equal(t, "WhatsApp o Email", tester.For(Values{FieldChannel: ChannelEmail}).Label)
}

func TestSuccessCopy(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Solicitud recibida", Success(LoanRequest).Title)
	require.Equal(t, "¡Listo! Eres parte del user testing", Success(TesterSignup).Title)
	require.Equal(t, "¿Qué sigue?", NextSteps.Title)

	term, ok := FieldByName(LoanRequest, FieldTerm)
	require.True(t, ok)
	require.Equal(t, "30 días", term.OptionLabel("30"))
	require.Equal(t, "90", term.OptionLabel("90"))
}
