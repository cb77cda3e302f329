package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestInterpolateColor(t *testing.T) {
	require.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	require.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#10b981")
	require.Equal(t, []uint8{0x10, 0xb9, 0x81}, []uint8{r, g, b})

	r, g, b = ParseHexColor("nope")
	require.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestApplyGradientKeepsText(t *testing.T) {
	out := ApplyGradient("emony p2p", "#10b981", "#6366f1")
	require.Equal(t, "emony p2p", ansi.Strip(out))
	require.Equal(t, "", ApplyGradient("", "#000000", "#ffffff"))
}

func TestCurrentDefaultsToEmony(t *testing.T) {
	require.Equal(t, "emony", Current().Name)
	require.Same(t, Current().S(), Current().S())
}
