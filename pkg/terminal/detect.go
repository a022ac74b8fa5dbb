// Package terminal answers the few questions the gallery asks about the
// terminal it runs in: which emulator it is, whether output is a TTY, how
// large it is, and which color profile rendering should target.
//
// Detection reads environment variables only and performs no terminal
// queries.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermGeneric   Terminal = iota // unknown emulator with basic capabilities
	TermGhostty                   // Ghostty
	TermKitty                     // Kitty
	TermWezTerm                   // WezTerm
	TermITerm2                    // iTerm2
	TermAlacritty                 // Alacritty
	TermVTE                       // GNOME Terminal, Tilix and other VTE hosts
	TermVSCode                    // VS Code integrated terminal
	TermEmacs                     // Emacs vterm/eat
	TermTmux                      // tmux
	TermScreen                    // GNU Screen
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermTmux:      "tmux",
	TermScreen:    "screen",
}

// String returns the emulator's short name.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "generic"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsMouse reports whether click reporting is known to work. Emacs
// terminals and bare multiplexers often swallow mouse events.
func (t Terminal) SupportsMouse() bool {
	switch t {
	case TermEmacs, TermScreen:
		return false
	default:
		return true
	}
}

// termPrograms maps lowercase TERM_PROGRAM values to emulators.
var termPrograms = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// markerVars are checked in order once TERM_PROGRAM and TERM are
// inconclusive. Multiplexers come last so the inner emulator wins.
var markerVars = []struct {
	env  string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"VTE_VERSION", TermVTE},
	{"INSIDE_EMACS", TermEmacs},
	{"TMUX", TermTmux},
	{"STY", TermScreen},
}

// Detect identifies the terminal emulator from the environment.
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		if t, ok := termPrograms[strings.ToLower(tp)]; ok {
			return t
		}
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	for _, m := range markerVars {
		if os.Getenv(m.env) != "" {
			return m.term
		}
	}

	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	return TermGeneric
}
