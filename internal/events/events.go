package events

import "fmt"

type Kind int

const (
	ElementCreated Kind = iota
	SwapStarted
	ElementsSwapped
	NoSwapConfirmed
	ElementSettled
	TrackerMoved
	CounterUpdated
	ElementConfirmed
	SortCompleted
)

var kindNames = map[Kind]string{
	ElementCreated:   "created",
	SwapStarted:      "swap_started",
	ElementsSwapped:  "swapped",
	NoSwapConfirmed:  "no_swap",
	ElementSettled:   "settled",
	TrackerMoved:     "tracker",
	CounterUpdated:   "counter",
	ElementConfirmed: "confirmed",
	SortCompleted:    "completed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is one outbound notification for the rendering surface.
// I and J are positions; J is -1 for single-position events.
// Value carries the element value for ElementCreated and the counter
// value for CounterUpdated. Name is the tracker name for TrackerMoved.
type Event struct {
	Kind  Kind
	I, J  int
	Value int
	Name  string
}

func (e Event) String() string {
	switch e.Kind {
	case ElementCreated:
		return fmt.Sprintf("%s i=%d value=%d", e.Kind, e.I, e.Value)
	case SwapStarted, ElementsSwapped, NoSwapConfirmed:
		return fmt.Sprintf("%s i=%d j=%d", e.Kind, e.I, e.J)
	case ElementSettled, ElementConfirmed:
		return fmt.Sprintf("%s i=%d", e.Kind, e.I)
	case TrackerMoved:
		return fmt.Sprintf("%s %s=%d", e.Kind, e.Name, e.I)
	case CounterUpdated:
		return fmt.Sprintf("%s %d", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}

func Created(index, value int) Event {
	return Event{Kind: ElementCreated, I: index, J: -1, Value: value}
}

func Pair(kind Kind, i, j int) Event {
	return Event{Kind: kind, I: i, J: j}
}

func Single(kind Kind, i int) Event {
	return Event{Kind: kind, I: i, J: -1}
}

func Tracker(name string, index int) Event {
	return Event{Kind: TrackerMoved, I: index, J: -1, Name: name}
}

func Counter(n int) Event {
	return Event{Kind: CounterUpdated, I: -1, J: -1, Value: n}
}

func Completed() Event {
	return Event{Kind: SortCompleted, I: -1, J: -1}
}
