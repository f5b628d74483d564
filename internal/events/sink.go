package events

import "sync"

// Sink receives events in emission order. Every emitted event doubles as
// a redraw request for the affected positions.
type Sink interface {
	Emit(e Event)
}

type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

type Multi struct {
	mu    sync.RWMutex
	sinks []Sink
}

func NewMulti(sinks ...Sink) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		m.Add(s)
	}
	return m
}

func (m *Multi) Add(s Sink) {
	if s == nil {
		return
	}
	m.mu.Lock()
	m.sinks = append(m.sinks, s)
	m.mu.Unlock()
}

func (m *Multi) Emit(e Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sinks {
		s.Emit(e)
	}
}

// Channel forwards events to a buffered channel. Emit blocks when the
// buffer is full, which keeps a slow renderer in lockstep with the run.
type Channel struct {
	C chan Event
}

func NewChannel(buffer int) *Channel {
	return &Channel{C: make(chan Event, buffer)}
}

func (c *Channel) Emit(e Event) { c.C <- e }
