package sequence

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/events"
)

const (
	MinCount = 2
	MaxCount = 10
	MinValue = 0
	MaxValue = 100
)

// Element is a value plus the identity it was created with. The identity
// only lets a renderer follow an element across swaps.
type Element struct {
	ID    int
	Value int
}

// Sequence is the model a sort run mutates. It owns the comparison
// counter and the sorted flag. It is not safe for concurrent writers; the
// driver guarantees a single active run.
type Sequence struct {
	elems       []Element
	comparisons int
	finished    bool
	settled     map[int]bool
	sink        events.Sink
}

func New(sink events.Sink) *Sequence {
	if sink == nil {
		sink = events.Discard
	}
	return &Sequence{sink: sink, settled: make(map[int]bool)}
}

func ValidCount(n int) bool { return n >= MinCount && n <= MaxCount }

// Generate replaces the sequence with n uniform values in [MinValue, MaxValue].
func (s *Sequence) Generate(n int, rng *rand.Rand) error {
	if !ValidCount(n) {
		return errors.Wrapf(ErrInvalidCount, "%d not in [%d, %d]", n, MinCount, MaxCount)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = MinValue + rng.Intn(MaxValue-MinValue+1)
	}
	s.reset(values)
	return nil
}

// Load replaces the sequence with the given values.
func (s *Sequence) Load(values []int) error {
	if !ValidCount(len(values)) {
		return errors.Wrapf(ErrInvalidCount, "%d not in [%d, %d]", len(values), MinCount, MaxCount)
	}
	for i, v := range values {
		if v < MinValue || v > MaxValue {
			return errors.Wrapf(ErrValueOutOfRange, "value %d at position %d", v, i)
		}
	}
	s.reset(values)
	return nil
}

func (s *Sequence) reset(values []int) {
	s.elems = make([]Element, len(values))
	for i, v := range values {
		s.elems[i] = Element{ID: i, Value: v}
	}
	s.comparisons = 0
	s.finished = false
	s.settled = make(map[int]bool)

	for i, e := range s.elems {
		s.sink.Emit(events.Created(i, e.Value))
	}
	s.sink.Emit(events.Counter(0))
}

// Compare reports whether value(i) > value(j). Every call counts, whatever
// the outcome.
func (s *Sequence) Compare(i, j int) bool {
	s.comparisons++
	s.sink.Emit(events.Counter(s.comparisons))
	return s.elems[i].Value > s.elems[j].Value
}

func (s *Sequence) Swap(i, j int) {
	s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	s.sink.Emit(events.Pair(events.ElementsSwapped, i, j))
}

func (s *Sequence) MarkSettled(i int) {
	s.settled[i] = true
	s.sink.Emit(events.Single(events.ElementSettled, i))
}

func (s *Sequence) Settled(i int) bool { return s.settled[i] }

func (s *Sequence) IsSorted() bool {
	return sort.SliceIsSorted(s.elems, func(a, b int) bool {
		return s.elems[a].Value < s.elems[b].Value
	})
}

func (s *Sequence) MarkFinished() { s.finished = true }
func (s *Sequence) Finished() bool { return s.finished }
func (s *Sequence) Comparisons() int { return s.comparisons }
func (s *Sequence) Len() int         { return len(s.elems) }
func (s *Sequence) Empty() bool      { return len(s.elems) == 0 }

// InRange reports whether i addresses an element.
func (s *Sequence) InRange(i int) bool { return i >= 0 && i < len(s.elems) }

func (s *Sequence) Value(i int) int { return s.elems[i].Value }

func (s *Sequence) Values() []int {
	out := make([]int, len(s.elems))
	for i, e := range s.elems {
		out[i] = e.Value
	}
	return out
}

func (s *Sequence) Elements() []Element {
	out := make([]Element, len(s.elems))
	copy(out, s.elems)
	return out
}
