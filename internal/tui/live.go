package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	width       = 60
	height      = 12
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var glyphs = map[viz.Mark]rune{
	viz.Idle:      '#',
	viz.Compared:  '=',
	viz.Swapping:  '*',
	viz.Settled:   '+',
	viz.Confirmed: '@',
}

// LiveRenderer redraws a plain-text board after every event. It is an
// events.Sink, so it can sit next to the trace recorder on a Multi.
type LiveRenderer struct {
	mu        sync.Mutex
	out       io.Writer
	title     string
	frameRate int
	lastFrame time.Time
	board     viz.Board
	canvas    [][]rune
	frames    int
}

// NewLiveRenderer draws at most frameRate frames per second; zero means
// every event is drawn.
func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
		board:     viz.NewBoard(),
		canvas:    canvas,
	}
}

func (r *LiveRenderer) Emit(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.board.Apply(e)
	if e.Kind != events.SortCompleted && r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()

	r.clear()
	r.drawBars()
	r.render(e)
}

// Frames reports how many frames were written.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) drawBars() {
	n := len(r.board.Values)
	if n == 0 {
		return
	}
	bw := width / n
	if bw > 6 {
		bw = 6
	}
	for i, v := range r.board.Values {
		rows := viz.BarRows(v, height)
		c := glyphs[r.board.MarkAt(i)]
		for y := height - 1; y >= height-rows; y-- {
			for dx := 0; dx < bw-2; dx++ {
				r.set(i*bw+dx, y, c)
			}
		}
	}
}

func (r *LiveRenderer) render(e events.Event) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  comparisons=%d swaps=%d\n", r.title, r.board.Comparisons, r.board.Swaps))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString("  " + r.labels() + "\n")
	b.WriteString("  " + e.String() + "\n")

	fmt.Fprint(r.out, b.String())
	r.frames++
}

func (r *LiveRenderer) labels() string {
	n := len(r.board.Values)
	if n == 0 {
		return ""
	}
	bw := width / n
	if bw > 6 {
		bw = 6
	}
	var b strings.Builder
	for i, v := range r.board.Values {
		cell := fmt.Sprint(v)
		if names := r.board.TrackersAt(i); len(names) > 0 {
			cell += "<"
		}
		b.WriteString(fmt.Sprintf("%-*s", bw, cell))
	}
	return strings.TrimRight(b.String(), " ")
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
