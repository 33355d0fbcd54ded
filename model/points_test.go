package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalogPoints_YRangeTracksInsertions(t *testing.T) {
	var p AnalogPoints

	require.Nil(t, p.YRange())
	require.Equal(t, 0, p.Len())

	p.Push(10, 3.0)
	require.Equal(t, &Range{Min: 3.0, Max: 3.0}, p.YRange())

	p.Push(20, -1.5)
	p.Push(5, 7.25)
	require.Equal(t, &Range{Min: -1.5, Max: 7.25}, p.YRange())
	require.Equal(t, 3, p.Len())
}

func TestAnalogPoints_YRangeSurvivesReplacement(t *testing.T) {
	var p AnalogPoints
	p.Push(0, 1.0)
	p.Push(10, 100.0)

	// Replacing the max must shrink the range back to the true extremes.
	p.Push(10, 2.0)
	require.Equal(t, &Range{Min: 1.0, Max: 2.0}, p.YRange())
	require.Equal(t, 2, p.Len())
}

func TestAnalogPoints_AscendingIterationUniqueKeys(t *testing.T) {
	var p AnalogPoints
	p.Push(30, 3)
	p.Push(10, 1)
	p.Push(20, 2)
	p.Push(10, 1.5) // replaces, does not duplicate

	var times []Time
	var values []float64
	for ts, pt := range p.All() {
		times = append(times, ts)
		values = append(values, pt.Value)
	}
	require.Equal(t, []Time{10, 20, 30}, times)
	require.Equal(t, []float64{1.5, 2, 3}, values)
}

func TestAnalogPoints_Neighbors(t *testing.T) {
	var p AnalogPoints
	p.Push(0, 0.0)
	p.Push(10, 10.0)

	ts, pt, ok := p.Before(10)
	require.True(t, ok)
	require.Equal(t, Time(0), ts)
	require.Equal(t, 0.0, pt.Value)

	ts, pt, ok = p.After(0)
	require.True(t, ok)
	require.Equal(t, Time(10), ts)
	require.Equal(t, 10.0, pt.Value)

	_, _, ok = p.Before(0)
	require.False(t, ok)
	_, _, ok = p.After(10)
	require.False(t, ok)

	ts, _, ok = p.First(9, 11)
	require.True(t, ok)
	require.Equal(t, Time(10), ts)
	_, _, ok = p.First(11, 12)
	require.False(t, ok)
}

func TestDiscretePoints_NearestPrior(t *testing.T) {
	var d DiscretePoints
	d.Push(0, DiscreteTransition{Label: "OFF", Kind: KindLine})
	d.Push(50, DiscreteTransition{Label: "ON", Kind: KindBox})

	ts, tr, ok := d.At(25)
	require.True(t, ok)
	require.Equal(t, Time(0), ts)
	require.Equal(t, "OFF", tr.Label)

	ts, tr, ok = d.At(50)
	require.True(t, ok)
	require.Equal(t, Time(50), ts)
	require.Equal(t, "ON", tr.Label)

	_, _, ok = d.At(-1)
	require.False(t, ok)
}

func TestDiscretePoints_OneTransitionPerTimestamp(t *testing.T) {
	var d DiscretePoints
	d.Push(5, DiscreteTransition{Label: "A"})
	d.Push(5, DiscreteTransition{Label: "B"})

	require.Equal(t, 1, d.Len())
	tr, ok := d.Get(5)
	require.True(t, ok)
	require.Equal(t, "B", tr.Label)
}

func TestWaveformEvents_InsertionOrderWithinTimestamp(t *testing.T) {
	var e WaveformEvents
	e.Push(100, EventMarker{Entity: "a/x", Label: "first"})
	e.Push(50, EventMarker{Entity: "b/y", Label: "early"})
	e.Push(100, EventMarker{Entity: "c/z", Label: "second"})

	require.Equal(t, 2, e.Len())

	ms, ok := e.Get(100)
	require.True(t, ok)
	require.Equal(t, []string{"first", "second"}, []string{ms[0].Label, ms[1].Label})

	var times []Time
	for ts := range e.All() {
		times = append(times, ts)
	}
	require.Equal(t, []Time{50, 100}, times)
}

func TestEntityPath_Domain(t *testing.T) {
	tests := []struct {
		path   EntityPath
		domain Domain
	}{
		{"motor/axis1/torque", "motor"},
		{"solo", "solo"},
		{"/leading/slash", "leading"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.domain, tt.path.Domain(), "path %q", tt.path)
	}
}

func TestEntityPath_Segments(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, EntityPath("a/b/c").Segments())
	require.Equal(t, []string{"a", "b"}, EntityPath("/a//b/").Segments())
	require.Nil(t, EntityPath("").Segments())
}
