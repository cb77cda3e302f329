package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestToast_ShowAndDismiss(t *testing.T) {
	toast := NewToast()
	require.False(t, toast.Visible())
	require.Empty(t, toast.View(80))

	cmd := toast.Show("sin navegador")
	require.NotNil(t, cmd)
	require.True(t, toast.Visible())
	require.Equal(t, "sin navegador", toast.Message())
	require.Contains(t, ansi.Strip(toast.View(80)), "sin navegador")

	toast.Update(ToastDismissMsg{Seq: 1})
	require.False(t, toast.Visible())
	require.Empty(t, toast.Message())
}

func TestToast_StaleDismissKeepsNewerToast(t *testing.T) {
	toast := NewToast()
	toast.Show("primero")
	toast.Show("segundo")

	toast.Update(ToastDismissMsg{Seq: 1})
	require.True(t, toast.Visible())
	require.Equal(t, "segundo", toast.Message())

	toast.Update(ToastDismissMsg{Seq: 2})
	require.False(t, toast.Visible())
}

func TestToast_ViewIsRightAligned(t *testing.T) {
	toast := NewToast()
	toast.Show("hola")

	view := ansi.Strip(toast.View(40))
	require.GreaterOrEqual(t, ansi.StringWidth(view), 40)
	require.True(t, strings.HasPrefix(view, " "))
	require.True(t, strings.HasSuffix(strings.TrimRight(view, " "), "hola"))
}
