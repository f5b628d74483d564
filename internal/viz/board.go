package viz

import (
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/trace"
)

// Mark is the highlight state of one bar.
type Mark int

const (
	Idle Mark = iota
	Compared
	Swapping
	Settled
	Confirmed
)

// Board is the renderable state of a session, rebuilt purely from the
// event stream. It never looks at the sequence itself.
type Board struct {
	Values      []int
	IDs         []int
	Marks       []Mark
	Trackers    map[string]int
	Comparisons int
	Swaps       int
	Steps       int
	Running     bool
	Done        bool
	// History is the inversion count after every swap of the run.
	History []float64
}

func NewBoard() Board {
	return Board{Trackers: map[string]int{}}
}

// Apply folds one event into the board. Events addressing positions the
// board does not hold are ignored.
func (b *Board) Apply(e events.Event) {
	if b.Trackers == nil {
		b.Trackers = map[string]int{}
	}
	b.Steps++

	switch e.Kind {
	case events.ElementCreated:
		if e.I == 0 {
			*b = Board{Trackers: map[string]int{}, Steps: 1}
		}
		b.Values = append(b.Values, e.Value)
		b.IDs = append(b.IDs, e.I)
		b.Marks = append(b.Marks, Idle)

	case events.CounterUpdated:
		b.Comparisons = e.Value
		if e.Value == 0 {
			b.History = []float64{float64(trace.Inversions(b.Values))}
		} else {
			b.Running = true
		}

	case events.SwapStarted:
		if !b.has(e.I, e.J) {
			return
		}
		b.Running = true
		b.clearTransient()
		b.Marks[e.I], b.Marks[e.J] = Swapping, Swapping

	case events.ElementsSwapped:
		if !b.has(e.I, e.J) {
			return
		}
		b.Values[e.I], b.Values[e.J] = b.Values[e.J], b.Values[e.I]
		b.IDs[e.I], b.IDs[e.J] = b.IDs[e.J], b.IDs[e.I]
		b.Marks[e.I], b.Marks[e.J] = b.Marks[e.J], b.Marks[e.I]
		b.Swaps++
		b.History = append(b.History, float64(trace.Inversions(b.Values)))

	case events.NoSwapConfirmed:
		if !b.has(e.I, e.J) {
			return
		}
		b.clearTransient()
		b.Marks[e.I], b.Marks[e.J] = Compared, Compared

	case events.ElementSettled:
		if !b.has(e.I) {
			return
		}
		b.clearTransient()
		b.Marks[e.I] = Settled

	case events.TrackerMoved:
		if !b.has(e.I) {
			return
		}
		b.Trackers[e.Name] = e.I

	case events.ElementConfirmed:
		if !b.has(e.I) {
			return
		}
		b.Trackers = map[string]int{}
		b.Marks[e.I] = Confirmed

	case events.SortCompleted:
		b.Trackers = map[string]int{}
		b.Running = false
		b.Done = true
	}
}

// MarkAt returns Idle for positions outside the board.
func (b *Board) MarkAt(i int) Mark {
	if !b.has(i) {
		return Idle
	}
	return b.Marks[i]
}

// TrackersAt lists the trackers pointing at i in a stable order.
func (b *Board) TrackersAt(i int) []string {
	var out []string
	for _, name := range trackerOrder {
		if idx, ok := b.Trackers[name]; ok && idx == i {
			out = append(out, name)
		}
	}
	return out
}

func (b *Board) has(indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= len(b.Values) {
			return false
		}
	}
	return true
}

// clearTransient drops comparison highlights, keeping settled and
// confirmed positions.
func (b *Board) clearTransient() {
	for i, m := range b.Marks {
		if m == Compared || m == Swapping {
			b.Marks[i] = Idle
		}
	}
}
