package toy

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is an animation tick addressed to one mount of one unit.
// Units compare Owner and Gen against their own and drop stale frames.
type FrameMsg struct {
	Owner string
	Gen   int
	Time  time.Time
}

// FrameCmd returns a command that delivers a FrameMsg after d.
func FrameCmd(owner string, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{Owner: owner, Gen: gen, Time: t}
	})
}
