package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes what rendering can rely on for this session.
type Capabilities struct {
	Term      Terminal
	TTY       bool // stdout is a terminal
	Size      Size
	TrueColor bool
	Mouse     bool
}

// Probe inspects the environment and stdout.
func Probe() Capabilities {
	t := Detect()
	return fromEnv(t, IsTTY(os.Stdout.Fd()))
}

// fromEnv assembles capabilities for t. Size is queried only for a TTY.
func fromEnv(t Terminal, tty bool) Capabilities {
	trueColor := t.SupportsTrueColor()
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	c := Capabilities{
		Term:      t,
		TTY:       tty,
		TrueColor: trueColor,
		Mouse:     tty && t.SupportsMouse(),
	}
	if tty {
		c.Size = GetSize()
	} else {
		c.Size = sizeFromEnv()
	}
	return c
}

// IsTTY reports whether fd is a terminal, including Cygwin/MSYS ptys.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Profile returns the color profile output should be rendered with.
// Anything that is not a terminal gets plain text.
func (c Capabilities) Profile() termenv.Profile {
	switch {
	case !c.TTY, os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case c.TrueColor:
		return termenv.TrueColor
	default:
		return termenv.ANSI256
	}
}
