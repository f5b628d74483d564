package visual

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidSpeed = errors.New("visual: invalid speed level")

type Speed string

const (
	Slow   Speed = "Slow"
	Normal Speed = "Normal"
	Fast   Speed = "Fast"
)

const (
	DefaultPause = time.Second
	// SettlePause is held after a position is marked settled.
	SettlePause = 500 * time.Millisecond
)

var speeds = []Speed{Slow, Normal, Fast}

var pauses = map[Speed]time.Duration{
	Slow:   1500 * time.Millisecond,
	Normal: time.Second,
	Fast:   500 * time.Millisecond,
}

func Speeds() []Speed {
	out := make([]Speed, len(speeds))
	copy(out, speeds)
	return out
}

// ParseSpeed accepts the three level names, case-insensitively.
func ParseSpeed(s string) (Speed, error) {
	for _, sp := range speeds {
		if strings.EqualFold(strings.TrimSpace(s), string(sp)) {
			return sp, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSpeed, s)
}

func (s Speed) Valid() bool {
	_, ok := pauses[s]
	return ok
}

// Pause maps the level to its step duration. Unknown levels fall back to
// DefaultPause instead of failing.
func (s Speed) Pause() time.Duration {
	if d, ok := pauses[s]; ok {
		return d
	}
	return DefaultPause
}

// Next cycles Slow -> Normal -> Fast -> Slow.
func (s Speed) Next() Speed {
	for i, sp := range speeds {
		if sp == s {
			return speeds[(i+1)%len(speeds)]
		}
	}
	return Normal
}

// SpeedSource is consulted before every pause so a level change applies
// to the remainder of a running sort.
type SpeedSource func() Speed

func Fixed(s Speed) SpeedSource { return func() Speed { return s } }
