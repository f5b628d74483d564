package viz

import (
	"testing"

	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/stretchr/testify/assert"
)

func created(b *Board, values ...int) {
	for i, v := range values {
		b.Apply(events.Created(i, v))
	}
	b.Apply(events.Counter(0))
}

func TestBoardFollowsSwaps(t *testing.T) {
	b := NewBoard()
	created(&b, 5, 3, 8)

	b.Apply(events.Counter(1))
	b.Apply(events.Pair(events.SwapStarted, 0, 1))
	assert.Equal(t, Swapping, b.MarkAt(0))
	assert.Equal(t, Swapping, b.MarkAt(1))

	b.Apply(events.Pair(events.ElementsSwapped, 0, 1))
	assert.Equal(t, []int{3, 5, 8}, b.Values)
	assert.Equal(t, []int{1, 0, 2}, b.IDs)
	assert.Equal(t, 1, b.Comparisons)
	assert.Equal(t, 1, b.Swaps)
	assert.Equal(t, []float64{1, 0}, b.History)

	b.Apply(events.Counter(2))
	b.Apply(events.Pair(events.NoSwapConfirmed, 1, 2))
	assert.Equal(t, Idle, b.MarkAt(0), "previous highlight cleared")
	assert.Equal(t, Compared, b.MarkAt(1))
	assert.Equal(t, Compared, b.MarkAt(2))
	assert.True(t, b.Running)
}

func TestBoardSettledSurvivesHighlights(t *testing.T) {
	b := NewBoard()
	created(&b, 2, 1, 3)

	b.Apply(events.Single(events.ElementSettled, 2))
	b.Apply(events.Pair(events.SwapStarted, 0, 1))
	b.Apply(events.Pair(events.NoSwapConfirmed, 0, 1))
	assert.Equal(t, Settled, b.MarkAt(2))
}

func TestBoardTrackersAndCompletion(t *testing.T) {
	b := NewBoard()
	created(&b, 4, 1, 2)

	b.Apply(events.Tracker(visual.TrackerMinimum, 0))
	b.Apply(events.Tracker(visual.TrackerItem, 0))
	assert.Equal(t, []string{visual.TrackerMinimum, visual.TrackerItem}, b.TrackersAt(0))

	b.Apply(events.Tracker(visual.TrackerItem, 2))
	assert.Equal(t, []string{visual.TrackerItem}, b.TrackersAt(2))

	for i := 0; i < 3; i++ {
		b.Apply(events.Single(events.ElementConfirmed, i))
	}
	b.Apply(events.Completed())
	assert.Empty(t, b.Trackers)
	assert.True(t, b.Done)
	assert.False(t, b.Running)
	assert.Equal(t, Confirmed, b.MarkAt(1))
}

func TestBoardIgnoresUnknownPositions(t *testing.T) {
	b := NewBoard()
	created(&b, 1, 2)

	b.Apply(events.Pair(events.ElementsSwapped, 0, 5))
	b.Apply(events.Single(events.ElementSettled, -1))
	b.Apply(events.Tracker(visual.TrackerItem, 9))
	assert.Equal(t, []int{1, 2}, b.Values)
	assert.Equal(t, 0, b.Swaps)
	assert.Empty(t, b.Trackers)
	assert.Equal(t, Idle, b.MarkAt(7))
}

func TestBoardResetsOnGenerate(t *testing.T) {
	b := NewBoard()
	created(&b, 9, 8)
	b.Apply(events.Counter(1))
	b.Apply(events.Completed())

	created(&b, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, b.Values)
	assert.Equal(t, 0, b.Comparisons)
	assert.False(t, b.Done)
	assert.Equal(t, []float64{0}, b.History)
}

func TestBarRows(t *testing.T) {
	tests := []struct {
		value, want int
	}{
		{0, 1},
		{4, 1},
		{50, 6},
		{100, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BarRows(tt.value, 12), "value %d", tt.value)
	}
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "classic", GetTheme("nope").Name)
	assert.Equal(t, "cyberpunk", NextTheme("classic").Name)
	assert.Equal(t, "classic", NextTheme("sunset").Name)
	assert.Len(t, ThemeNames(), len(Themes))
	assert.Equal(t, ThemeClassic.Settled, ThemeClassic.Color(Settled))
}
