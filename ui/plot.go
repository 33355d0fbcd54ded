package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wavescope/wavescope/engine"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/util"
)

// cell is one plotted character with its style.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// plotDomain renders one domain's waveforms into a width×height character
// grid: analog traces, stacked discrete tracks, shared event markers, the
// cursor, and the secondary marker. The time axis is the frame-global range
// so all domains stay synchronized under one cursor.
func plotDomain(dv *engine.DomainView, events *model.WaveformEvents,
	minT, maxT model.Time, cursor model.Time, marker *model.Time,
	width, height int) string {

	if dv.Err != nil {
		return errStyle.Render("cannot render this domain: " + dv.Err.Error())
	}
	if width < 16 {
		width = 16
	}
	if height < 4 {
		height = 4
	}

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}

	span := maxT - minT
	col := func(t model.Time) int {
		if span == 0 {
			return 0
		}
		c := int((t - minT) * model.Time(width-1) / span)
		return min(max(c, 0), width-1)
	}
	row := func(v float64) int {
		b := dv.Bounds
		if b.Span() == 0 {
			return height / 2
		}
		r := int((b.Max - v) / b.Span() * float64(height-1))
		return min(max(r, 0), height-1)
	}

	// Event markers first so data overdraws them.
	for t, markers := range events.All() {
		c := col(t)
		for r := 0; r < height; r++ {
			grid[r][c] = cell{ch: '┊', style: seriesStyle(markers[0].Color)}
		}
	}

	// Discrete tracks: flat line traces and labeled box intervals.
	for _, track := range dv.Tracks {
		r := row(track.Y)
		for _, line := range track.Lines {
			if line.Color.IsTransparent() {
				continue
			}
			st := seriesStyle(line.Color)
			for c := 0; c < width; c++ {
				grid[r][c] = cell{ch: '─', style: st}
			}
		}
		for _, iv := range track.Intervals {
			st := seriesStyle(iv.Transition.Color)
			c0, c1 := col(iv.Start), col(iv.End)
			for c := c0; c <= c1; c++ {
				grid[r][c] = cell{ch: '█', style: st}
			}
			// Box label, when it fits inside the interval.
			if label := iv.Transition.Label; label != "" && c1-c0+1 > len(label)+1 {
				for i, ch := range label {
					grid[r][c0+1+i] = cell{ch: ch, style: st.Reverse(true)}
				}
			}
		}
	}

	// Analog traces connect consecutive samples column by column.
	for _, s := range dv.Series {
		st := seriesStyle(s.Color)
		prevC, prevR := -1, 0
		for t, pt := range s.Analog.All() {
			c, r := col(t), row(pt.Value)
			grid[r][c] = cell{ch: '•', style: st}
			if prevC >= 0 {
				drawSegment(grid, prevC, prevR, c, r, st)
			}
			prevC, prevR = c, r
		}
	}

	// Cursor and secondary marker on top.
	cc := col(cursor)
	for r := 0; r < height; r++ {
		grid[r][cc] = cell{ch: '│', style: cursorStyle}
	}
	if marker != nil {
		mc := col(*marker)
		for r := 0; r < height; r++ {
			grid[r][mc] = cell{ch: '┆', style: markerStyle}
		}
	}

	var sb strings.Builder
	for r := range grid {
		for c := range grid[r] {
			cl := grid[r][c]
			if cl.ch == ' ' {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cl.style.Render(string(cl.ch)))
		}
		sb.WriteByte('\n')
	}

	// Time axis.
	left := util.FormatTime(minT)
	right := util.FormatTime(maxT)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(dimStyle.Render(left + strings.Repeat(" ", gap) + right))

	return sb.String()
}

// drawSegment fills the columns between two samples with a straight
// interpolated trace.
func drawSegment(grid [][]cell, c0, r0, c1, r1 int, st lipgloss.Style) {
	if c1 <= c0+1 {
		return
	}
	for c := c0 + 1; c < c1; c++ {
		frac := float64(c-c0) / float64(c1-c0)
		r := r0 + int(frac*float64(r1-r0))
		if grid[r][c].ch == ' ' || grid[r][c].ch == '┊' {
			grid[r][c] = cell{ch: '·', style: st}
		}
	}
}
