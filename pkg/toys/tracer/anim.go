package tracer

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settle is how close to rest the spring must be before frames stop.
const settle = 0.005

// growth drives the score bars from empty to full on mount.
type growth struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newGrowth(interval time.Duration) growth {
	delta := harmonica.FPS(60)
	if interval > 0 {
		delta = interval.Seconds()
	}
	return growth{
		spring: harmonica.NewSpring(delta, 6.0, 0.7),
		pos:    1,
	}
}

func (g *growth) reset() {
	g.pos, g.vel = 0, 0
}

func (g *growth) finish() {
	g.pos, g.vel = 1, 0
}

// advance moves one frame and reports whether more frames are needed.
func (g *growth) advance() bool {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, 1)
	if math.Abs(1-g.pos) < settle && math.Abs(g.vel) < settle {
		g.finish()
		return false
	}
	return true
}

// progress is the bar scale. It may briefly exceed 1 while the spring
// overshoots.
func (g growth) progress() float64 {
	return math.Max(g.pos, 0)
}
