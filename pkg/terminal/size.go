package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Fallback dimensions when nothing else is known.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Size is a terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. TIOCGWINSZ on stdout, then stderr
//  2. the terminal attached to stdin
//  3. COLUMNS/LINES
//  4. 80x24
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := sizeFromIoctl(f.Fd()); s.valid() {
			return s
		}
	}
	if w, h, err := term.GetSize(os.Stdin.Fd()); err == nil {
		if s := (Size{Cols: w, Rows: h}); s.valid() {
			return s
		}
	}
	return sizeFromEnv()
}

func (s Size) valid() bool {
	return s.Cols > 0 && s.Rows > 0
}

// sizeFromIoctl queries the window size of fd. Returns a zero Size on
// failure.
func sizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}
}

// sizeFromEnv reads COLUMNS/LINES, falling back to the defaults.
func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", DefaultCols),
		Rows: envInt("LINES", DefaultRows),
	}
}

// envInt reads a positive integer from the named variable, or returns
// fallback.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
