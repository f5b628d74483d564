package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/sequence"
	"github.com/san-kum/sortviz/internal/visual"
)

const (
	barHeight = 12
	colWidth  = 5
)

var trackerOrder = []string{
	visual.TrackerMinimum,
	visual.TrackerItem,
	visual.TrackerLeft,
	visual.TrackerRight,
}

var trackerLabels = map[string]string{
	visual.TrackerMinimum: "min",
	visual.TrackerItem:    "^",
	visual.TrackerLeft:    "L",
	visual.TrackerRight:   "R",
}

// BarRows is how many rows a value occupies in a board of the given
// height. Zero still gets a one-row stub so the position stays visible.
func BarRows(value, height int) int {
	rows := (value*height + sequence.MaxValue/2) / sequence.MaxValue
	if rows < 1 {
		rows = 1
	}
	if rows > height {
		rows = height
	}
	return rows
}

// RenderBars draws the board as vertical bars with a value row and a
// tracker row underneath.
func RenderBars(b *Board, t Theme, height int) string {
	if len(b.Values) == 0 {
		return Subtle.Render("  no sequence, press g to generate")
	}

	var out strings.Builder
	for row := height; row >= 1; row-- {
		out.WriteString("  ")
		for i, v := range b.Values {
			cell := strings.Repeat(" ", colWidth)
			if BarRows(v, height) >= row {
				glyph := "███"
				if v == 0 {
					glyph = "▁▁▁"
				}
				cell = lipgloss.NewStyle().Foreground(t.Color(b.MarkAt(i))).Render(glyph) + "  "
			}
			out.WriteString(cell)
		}
		out.WriteString("\n")
	}

	out.WriteString("  ")
	for _, v := range b.Values {
		out.WriteString(fmt.Sprintf("%-*d", colWidth, v))
	}
	out.WriteString("\n  ")

	tracker := lipgloss.NewStyle().Foreground(t.Tracker).Bold(true)
	for i := range b.Values {
		var labels []string
		for _, name := range b.TrackersAt(i) {
			labels = append(labels, trackerLabels[name])
		}
		label := strings.Join(labels, ",")
		pad := colWidth - lipgloss.Width(label)
		if pad < 0 {
			pad = 0
		}
		out.WriteString(tracker.Render(label) + strings.Repeat(" ", pad))
	}
	out.WriteString("\n")
	return out.String()
}
