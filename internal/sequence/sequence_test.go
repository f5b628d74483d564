package sequence

import (
	"math/rand"
	"testing"

	"github.com/san-kum/sortviz/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct{ got []events.Event }

func (c *collector) Emit(e events.Event) { c.got = append(c.got, e) }

func TestGenerate_ValidCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := MinCount; n <= MaxCount; n++ {
		s := New(nil)
		require.NoError(t, s.Generate(n, rng))

		assert.Equal(t, n, s.Len())
		assert.Equal(t, 0, s.Comparisons())
		assert.False(t, s.Finished())
		for _, v := range s.Values() {
			assert.GreaterOrEqual(t, v, MinValue)
			assert.LessOrEqual(t, v, MaxValue)
		}
	}
}

func TestGenerate_InvalidCounts(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"one", 1},
		{"eleven", 11},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			require.NoError(t, s.Load([]int{4, 2}))

			err := s.Generate(tt.n, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidCount)
			assert.Equal(t, []int{4, 2}, s.Values(), "failed generate must not touch the sequence")
		})
	}
}

func TestGenerate_ResetsState(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Load([]int{3, 1, 2}))
	s.Compare(0, 1)
	s.MarkSettled(2)
	s.MarkFinished()

	require.NoError(t, s.Generate(4, rand.New(rand.NewSource(3))))
	assert.Equal(t, 0, s.Comparisons())
	assert.False(t, s.Finished())
	assert.False(t, s.Settled(2))
}

func TestGenerate_EmitsCreatedEvents(t *testing.T) {
	c := &collector{}
	s := New(c)
	require.NoError(t, s.Load([]int{9, 0, 100}))

	require.Len(t, c.got, 4)
	for i, want := range []int{9, 0, 100} {
		assert.Equal(t, events.Created(i, want), c.got[i])
	}
	assert.Equal(t, events.Counter(0), c.got[3])
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	s := New(nil)
	assert.ErrorIs(t, s.Load([]int{1, 101}), ErrValueOutOfRange)
	assert.ErrorIs(t, s.Load([]int{-1, 5}), ErrValueOutOfRange)
	assert.True(t, s.Empty())
}

func TestCompare_CountsEveryCall(t *testing.T) {
	c := &collector{}
	s := New(c)
	require.NoError(t, s.Load([]int{5, 3, 5}))
	c.got = nil

	assert.True(t, s.Compare(0, 1))
	assert.False(t, s.Compare(1, 0))
	assert.False(t, s.Compare(0, 2), "equal values are not out of order")

	assert.Equal(t, 3, s.Comparisons())
	assert.Equal(t, []events.Event{events.Counter(1), events.Counter(2), events.Counter(3)}, c.got)
}

func TestSwap_MovesIdentity(t *testing.T) {
	c := &collector{}
	s := New(c)
	require.NoError(t, s.Load([]int{8, 2}))
	c.got = nil

	s.Swap(0, 1)

	elems := s.Elements()
	assert.Equal(t, Element{ID: 1, Value: 2}, elems[0])
	assert.Equal(t, Element{ID: 0, Value: 8}, elems[1])
	assert.Equal(t, []events.Event{events.Pair(events.ElementsSwapped, 0, 1)}, c.got)
	assert.Equal(t, 0, s.Comparisons(), "swap does not count as a comparison")
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		values []int
		sorted bool
	}{
		{[]int{1, 2, 3}, true},
		{[]int{2, 2, 2}, true},
		{[]int{0, 100}, true},
		{[]int{3, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	}

	for _, tt := range tests {
		s := New(nil)
		require.NoError(t, s.Load(tt.values))
		assert.Equal(t, tt.sorted, s.IsSorted(), "values %v", tt.values)
	}
}
