package trace

import (
	"sync"

	"github.com/san-kum/sortviz/internal/events"
)

// Step is one recorded event plus the comparison counter at that moment.
type Step struct {
	Index       int
	Event       events.Event
	Comparisons int
}

// Recorder is an events.Sink that keeps the full event history of a
// session. A new generation (ElementCreated at position 0) does not clear
// earlier steps; Run returns the steps since the last generation.
type Recorder struct {
	mu          sync.Mutex
	steps       []Step
	runStart    int
	comparisons int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.Kind == events.ElementCreated && e.I == 0 {
		r.runStart = len(r.steps)
		r.comparisons = 0
	}
	if e.Kind == events.CounterUpdated {
		r.comparisons = e.Value
	}
	r.steps = append(r.steps, Step{
		Index:       len(r.steps) - r.runStart + 1,
		Event:       e,
		Comparisons: r.comparisons,
	})
}

// Steps returns every recorded step.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Run returns the steps of the most recent generation.
func (r *Recorder) Run() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps)-r.runStart)
	copy(out, r.steps[r.runStart:])
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.steps = nil
	r.runStart = 0
	r.comparisons = 0
	r.mu.Unlock()
}

// Count returns how many steps of kind k the current run holds.
func (r *Recorder) Count(k events.Kind) int {
	n := 0
	for _, s := range r.Run() {
		if s.Event.Kind == k {
			n++
		}
	}
	return n
}
