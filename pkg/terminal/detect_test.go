package terminal

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// termEnvVars lists all environment variables inspected during detection.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM", "NO_COLOR",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "INSIDE_EMACS", "TMUX", "STY",
	"COLUMNS", "LINES",
}

// clearTermEnv unsets all terminal-related env vars for test isolation.
// t.Setenv registers the restore; Unsetenv makes the variable absent.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty program", map[string]string{"TERM_PROGRAM": "kitty"}, TermKitty},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"kitty window id", map[string]string{"KITTY_WINDOW_ID": "1"}, TermKitty},
		{"wezterm program", map[string]string{"TERM_PROGRAM": "WezTerm"}, TermWezTerm},
		{"wezterm executable", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, TermWezTerm},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm session", map[string]string{"ITERM_SESSION_ID": "w0t0p0"}, TermITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"alacritty term", map[string]string{"TERM": "alacritty"}, TermAlacritty},
		{"vte", map[string]string{"VTE_VERSION": "7200"}, TermVTE},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, TermVSCode},
		{"emacs", map[string]string{"INSIDE_EMACS": "29.1,vterm"}, TermEmacs},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-501/default,1,0"}, TermTmux},
		{"screen", map[string]string{"STY": "1.pts-0.host", "TERM": "screen-256color"}, TermScreen},
		{"program beats tmux", map[string]string{"TERM_PROGRAM": "ghostty", "TMUX": "x"}, TermGhostty},
		{"unknown program falls through", map[string]string{"TERM_PROGRAM": "Apple_Terminal"}, TermGeneric},
		{"nothing set", nil, TermGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	cases := map[Terminal]string{
		TermGeneric:  "generic",
		TermGhostty:  "ghostty",
		TermVTE:      "vte",
		TermScreen:   "screen",
		Terminal(99): "generic",
		Terminal(-1): "generic",
	}
	for term, want := range cases {
		if got := term.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", term, got, want)
		}
	}
}

func TestSupports(t *testing.T) {
	if !TermKitty.SupportsTrueColor() || TermTmux.SupportsTrueColor() {
		t.Error("unexpected true color support")
	}
	if TermEmacs.SupportsMouse() || !TermGeneric.SupportsMouse() {
		t.Error("unexpected mouse support")
	}
}

func TestFromEnvNotTTY(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "132")

	c := fromEnv(TermKitty, false)
	if c.Mouse {
		t.Error("mouse should be off without a TTY")
	}
	if c.Size.Cols != 132 || c.Size.Rows != DefaultRows {
		t.Errorf("Size = %+v, want 132x%d", c.Size, DefaultRows)
	}
	if c.Profile() != termenv.Ascii {
		t.Errorf("Profile() = %v, want Ascii", c.Profile())
	}
}

func TestFromEnvColorTerm(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLORTERM", "truecolor")

	if c := fromEnv(TermGeneric, false); !c.TrueColor {
		t.Error("COLORTERM=truecolor should enable true color")
	}
}

func TestProfile(t *testing.T) {
	clearTermEnv(t)

	tests := []struct {
		name string
		caps Capabilities
		want termenv.Profile
	}{
		{"true color tty", Capabilities{TTY: true, TrueColor: true}, termenv.TrueColor},
		{"plain tty", Capabilities{TTY: true}, termenv.ANSI256},
		{"pipe", Capabilities{TrueColor: true}, termenv.Ascii},
	}
	for _, tt := range tests {
		if got := tt.caps.Profile(); got != tt.want {
			t.Errorf("%s: Profile() = %v, want %v", tt.name, got, tt.want)
		}
	}

	t.Setenv("NO_COLOR", "1")
	if got := (Capabilities{TTY: true, TrueColor: true}).Profile(); got != termenv.Ascii {
		t.Errorf("NO_COLOR: Profile() = %v, want Ascii", got)
	}
}

func TestSizeFromEnv(t *testing.T) {
	clearTermEnv(t)
	if s := sizeFromEnv(); s.Cols != DefaultCols || s.Rows != DefaultRows {
		t.Errorf("sizeFromEnv() = %+v, want defaults", s)
	}

	t.Setenv("COLUMNS", "abc")
	t.Setenv("LINES", "-5")
	if s := sizeFromEnv(); s.Cols != DefaultCols || s.Rows != DefaultRows {
		t.Errorf("invalid env should fall back, got %+v", s)
	}

	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "40")
	if s := sizeFromEnv(); s.Cols != 100 || s.Rows != 40 {
		t.Errorf("sizeFromEnv() = %+v, want 100x40", s)
	}
}

func TestGetSizePositive(t *testing.T) {
	s := GetSize()
	if s.Cols <= 0 || s.Rows <= 0 {
		t.Errorf("GetSize() = %+v, want positive dimensions", s)
	}
}
