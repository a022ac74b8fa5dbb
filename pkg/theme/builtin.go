package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thMidnightTheme(),
		thPaperTheme(),
		thMonoTheme(),
	} {
		Register(t)
	}
}

// thMidnightTheme is the default dark navy palette.
func thMidnightTheme() Theme {
	return Theme{
		Name:          "midnight",
		NavBackground: "#111111",
		NavForeground: "#dddddd",
		NavActive:     "#444444",
		Background:    "#090919",
		Foreground:    "#e0e0f8",

		Panel:       "#0f0f20",
		PanelBorder: "#2a2a50",
		Dim:         "#6a6a9a",
		Faint:       "#3a3a6a",
		Accent:      "#4ECDC4",
		Highlight:   "#FFD700",

		Series: []string{"#FF6B6B", "#4ECDC4", "#FFB347"},

		HelpKey:  "#4ECDC4",
		HelpDesc: "#6a6a9a",
	}
}

// thPaperTheme is a light palette with purple accents.
func thPaperTheme() Theme {
	return Theme{
		Name:          "paper",
		NavBackground: "#2d2450",
		NavForeground: "#ede9fe",
		NavActive:     "#764ba2",
		Background:    "#f5f3ff",
		Foreground:    "#1f2937",

		Panel:       "#ffffff",
		PanelBorder: "#c4b5fd",
		Dim:         "#6b7280",
		Faint:       "#d1d5db",
		Accent:      "#7c3aed",
		Highlight:   "#db2777",

		Series: []string{"#FF6B6B", "#4ECDC4", "#95E1D3"},

		HelpKey:  "#7c3aed",
		HelpDesc: "#6b7280",
	}
}

// thMonoTheme is a grayscale palette for low-color terminals.
func thMonoTheme() Theme {
	return Theme{
		Name:          "mono",
		NavBackground: "#1c1c1c",
		NavForeground: "#d0d0d0",
		NavActive:     "#4e4e4e",
		Background:    "#121212",
		Foreground:    "#eeeeee",

		Panel:       "#1c1c1c",
		PanelBorder: "#585858",
		Dim:         "#8a8a8a",
		Faint:       "#444444",
		Accent:      "#ffffff",
		Highlight:   "#ffffff",

		Series: []string{"#bcbcbc", "#8a8a8a", "#eeeeee"},

		HelpKey:  "#ffffff",
		HelpDesc: "#8a8a8a",
	}
}
