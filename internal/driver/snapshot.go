package driver

import (
	"sync"

	"github.com/san-kum/sortviz/internal/events"
)

// snapshot mirrors the sequence from its own events so readers never touch
// the sequence while a sort goroutine is mutating it.
type snapshot struct {
	mu          sync.Mutex
	values      []int
	comparisons int
}

func (s *snapshot) Emit(e events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Kind {
	case events.ElementCreated:
		if e.I == 0 {
			s.values = s.values[:0]
		}
		s.values = append(s.values, e.Value)
	case events.CounterUpdated:
		s.comparisons = e.Value
	case events.ElementsSwapped:
		if e.I >= 0 && e.J >= 0 && e.I < len(s.values) && e.J < len(s.values) {
			s.values[e.I], s.values[e.J] = s.values[e.J], s.values[e.I]
		}
	}
}

func (s *snapshot) read() ([]int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.values...), s.comparisons
}
