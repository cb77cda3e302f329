package theme

// NewEmony creates the default dark theme in the product's emerald and
// indigo brand colors.
func NewEmony() *Theme {
	return &Theme{
		Name:   "emony",
		IsDark: true,

		Primary:   "#10b981", // emerald 500
		Secondary: "#6366f1", // indigo 500
		Accent:    "#34d399", // emerald 400

		BgBase:    "#0b1120",
		BgSurface: "#111827",
		BgOverlay: "#1f2937",

		FgMuted:  "#6b7280",
		FgSubtle: "#9ca3af",
		FgBase:   "#e5e7eb",
		FgBright: "#f9fafb",

		Success: "#22c55e",
		Warning: "#f59e0b",
		Error:   "#ef4444",
	}
}
