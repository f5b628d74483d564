package trace

import "github.com/san-kum/sortviz/internal/events"

// Replay rebuilds the value order after every swap of a run. The first
// entry is the generated order.
func Replay(steps []Step) [][]int {
	var (
		values []int
		out    [][]int
	)
	for _, s := range steps {
		e := s.Event
		switch e.Kind {
		case events.ElementCreated:
			if e.I == 0 {
				values = values[:0]
				out = out[:0]
			}
			values = append(values, e.Value)
		case events.CounterUpdated:
			if e.Value == 0 && len(out) == 0 && len(values) > 0 {
				out = append(out, snapshot(values))
			}
		case events.ElementsSwapped:
			if e.I < 0 || e.J < 0 || e.I >= len(values) || e.J >= len(values) {
				continue
			}
			values[e.I], values[e.J] = values[e.J], values[e.I]
			out = append(out, snapshot(values))
		}
	}
	return out
}

// Disorder counts inversions before the first swap and after each one.
// The curve always ends at zero for a sorted run.
func Disorder(steps []Step) []float64 {
	orders := Replay(steps)
	out := make([]float64, len(orders))
	for i, values := range orders {
		out[i] = float64(Inversions(values))
	}
	return out
}

func Inversions(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}

func snapshot(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}
