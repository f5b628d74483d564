package visual

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/sequence"
)

// Tracker names used by the built-in algorithms.
const (
	TrackerMinimum = "minimum"
	TrackerItem    = "item"
	TrackerLeft    = "left"
	TrackerRight   = "right"
)

// Sync turns algorithm decisions into paced, observable steps. Compare and
// Swap go to the sequence; the sequence and Sync share one sink so the
// renderer sees a single ordered stream.
type Sync struct {
	seq       *sequence.Sequence
	sink      events.Sink
	scheduler Scheduler
	speed     SpeedSource
	swaps     int
}

func NewSync(seq *sequence.Sequence, sink events.Sink, scheduler Scheduler, speed SpeedSource) *Sync {
	if sink == nil {
		sink = events.Discard
	}
	if scheduler == nil {
		scheduler = RealTime{}
	}
	if speed == nil {
		speed = Fixed(Normal)
	}
	return &Sync{seq: seq, sink: sink, scheduler: scheduler, speed: speed}
}

func (s *Sync) Len() int { return s.seq.Len() }

func (s *Sync) Swaps() int { return s.swaps }

func (s *Sync) Compare(i, j int) (bool, error) {
	if err := s.check(i, j); err != nil {
		return false, err
	}
	return s.seq.Compare(i, j), nil
}

// Swap pauses once with the pair in flight and once after the exchange.
func (s *Sync) Swap(ctx context.Context, i, j int) error {
	if err := s.check(i, j); err != nil {
		return err
	}
	s.sink.Emit(events.Pair(events.SwapStarted, i, j))
	if err := s.pause(ctx); err != nil {
		return err
	}
	s.seq.Swap(i, j)
	s.swaps++
	return s.pause(ctx)
}

func (s *Sync) NoSwap(ctx context.Context, i, j int) error {
	if err := s.check(i, j); err != nil {
		return err
	}
	s.sink.Emit(events.Pair(events.NoSwapConfirmed, i, j))
	return s.pause(ctx)
}

func (s *Sync) Settle(ctx context.Context, i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.seq.MarkSettled(i)
	return s.scheduler.Pause(ctx, SettlePause)
}

func (s *Sync) Track(ctx context.Context, name string, i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.sink.Emit(events.Tracker(name, i))
	return s.pause(ctx)
}

// Confirm highlights a position during the finalization pass.
func (s *Sync) Confirm(ctx context.Context, i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.sink.Emit(events.Single(events.ElementConfirmed, i))
	return s.scheduler.Pause(ctx, s.speed().Pause()/2)
}

func (s *Sync) Hold(ctx context.Context, d time.Duration) error {
	return s.scheduler.Pause(ctx, d)
}

func (s *Sync) pause(ctx context.Context) error {
	return s.scheduler.Pause(ctx, s.speed().Pause())
}

func (s *Sync) check(indices ...int) error {
	for _, i := range indices {
		if !s.seq.InRange(i) {
			return errors.Wrapf(sequence.ErrIndexOutOfRange, "position %d of %d", i, s.seq.Len())
		}
	}
	return nil
}
