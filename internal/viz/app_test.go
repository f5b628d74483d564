package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, values ...int) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.TimeScale = 0
	cfg.Values = values
	a := NewApp(Options{Config: cfg})
	t.Cleanup(a.cancel)
	return a
}

func (a *App) drain() {
	for len(a.events.C) > 0 {
		a.Update(eventMsg(<-a.events.C))
	}
	for len(a.notices) > 0 {
		a.Update(noticeMsg(<-a.notices))
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppGenerateAndSort(t *testing.T) {
	a := newTestApp(t, 5, 3, 8, 1)

	msg := a.generate()()
	a.Update(msg)
	a.drain()
	assert.Equal(t, []int{5, 3, 8, 1}, a.board.Values)

	a.Update(a.start()())
	a.drain()
	assert.Equal(t, []int{1, 3, 5, 8}, a.board.Values)
	assert.Equal(t, 6, a.board.Comparisons)
	assert.True(t, a.board.Done)
	require.NotNil(t, a.result)
	assert.Contains(t, a.View(), "sorted with Bubble Sort")
}

func TestAppKeys(t *testing.T) {
	a := newTestApp(t)

	a.Update(key("a"))
	assert.Equal(t, sorting.SelectionSort, a.session.Algorithm())

	a.Update(key("v"))
	assert.Equal(t, visual.Fast, a.session.Speed())

	a.Update(key("+"))
	assert.Equal(t, 11, a.session.Count())

	a.Update(key("t"))
	assert.Equal(t, "cyberpunk", a.theme.Name)

	_, cmd := a.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Error(t, a.ctx.Err())
}

func TestAppShowsRejections(t *testing.T) {
	a := newTestApp(t)
	a.session.SetCount(11)

	a.Update(a.generate()())
	a.drain()
	assert.Contains(t, a.status, "'11' is not a valid number of elements!")
	assert.Equal(t, 10, a.session.Count())

	a.Update(a.generate()())
	a.drain()
	a.session.SetAlgorithm(sorting.MergeSort)
	a.Update(a.start()())
	a.drain()
	assert.Contains(t, a.status, "Merge Sort is not yet available!")
	assert.False(t, a.board.Done)
}

func TestAppConfigReload(t *testing.T) {
	a := newTestApp(t)
	cfg := config.DefaultConfig()
	cfg.Algorithm = sorting.InsertionSort
	cfg.Speed = "Slow"
	cfg.Theme = "ocean"

	a.Update(ConfigMsg(cfg))
	assert.Equal(t, sorting.InsertionSort, a.session.Algorithm())
	assert.Equal(t, visual.Slow, a.session.Speed())
	assert.Equal(t, "ocean", a.theme.Name)
	assert.True(t, strings.Contains(a.View(), "config reloaded"))
}

func TestAppViewSeparator(t *testing.T) {
	a := newTestApp(t, 2, 1)
	assert.Contains(t, a.View(), "◆")

	a.Update(tea.WindowSizeMsg{Width: 3, Height: 10})
	assert.NotPanics(t, func() { a.View() })
}

func TestSeparatorWidth(t *testing.T) {
	sep := Separator(40)
	assert.Equal(t, 37, strings.Count(sep, "─"))
	assert.Contains(t, sep, " ◆ ")
	assert.NotPanics(t, func() { Separator(0) })
}
