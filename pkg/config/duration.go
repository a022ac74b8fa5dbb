package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration that config files write either as a Go
// duration string ("16ms", "1s") or as a frame rate ("60fps").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string
// leaves the duration at zero.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}

	if rate, ok := strings.CutSuffix(s, "fps"); ok {
		fps, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
		if err != nil || !(fps > 0) || math.IsInf(fps, 0) {
			return fmt.Errorf("invalid frame rate %q", s)
		}
		d.Duration = time.Duration(float64(time.Second) / fps)
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Frame rates are written
// back as the equivalent duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// FPS returns the frame rate of an interval, or 0 for a zero duration.
func (d Duration) FPS() float64 {
	if d.Duration <= 0 {
		return 0
	}
	return float64(time.Second) / float64(d.Duration)
}
