package visual

import (
	"context"
	"sync"
	"time"
)

// Scheduler suspends the run between steps. Swapping the scheduler changes
// pacing without touching algorithm code.
type Scheduler interface {
	Pause(ctx context.Context, d time.Duration) error
}

// RealTime blocks for the full duration unless ctx ends first.
type RealTime struct{}

func (RealTime) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Instant never waits.
type Instant struct{}

func (Instant) Pause(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Scaled multiplies every duration by Factor before delegating.
type Scaled struct {
	Factor float64
	Next   Scheduler
}

func (s Scaled) Pause(ctx context.Context, d time.Duration) error {
	next := s.Next
	if next == nil {
		next = RealTime{}
	}
	if s.Factor <= 0 {
		return Instant{}.Pause(ctx, d)
	}
	return next.Pause(ctx, time.Duration(float64(d)*s.Factor))
}

// NewScheduler picks RealTime for a scale of 1, Instant for 0 and Scaled
// otherwise.
func NewScheduler(timeScale float64) Scheduler {
	switch {
	case timeScale <= 0:
		return Instant{}
	case timeScale == 1:
		return RealTime{}
	default:
		return Scaled{Factor: timeScale, Next: RealTime{}}
	}
}

// Recording returns immediately and remembers every requested duration.
type Recording struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (r *Recording) Pause(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.pauses = append(r.pauses, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *Recording) Pauses() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.pauses))
	copy(out, r.pauses)
	return out
}

func (r *Recording) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Pauses() {
		total += d
	}
	return total
}
