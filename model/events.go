package model

import (
	"iter"
	"sort"
)

// EventMarker is a punctual annotation at one timestamp. It marks an
// instant, not a state: nothing remains active after it.
type EventMarker struct {
	Entity EntityPath
	Label  string
	Color  Color
}

// WaveformEvents collects the event markers of every entity on one shared
// timeline. Multiple entities may fire at the same instant; markers at one
// timestamp keep insertion order.
type WaveformEvents struct {
	times   []Time
	markers [][]EventMarker
}

// Len returns the number of distinct timestamps holding markers.
func (e *WaveformEvents) Len() int {
	return len(e.times)
}

// Push appends a marker at t.
func (e *WaveformEvents) Push(t Time, m EventMarker) {
	i := sort.Search(len(e.times), func(i int) bool { return e.times[i] >= t })
	if i < len(e.times) && e.times[i] == t {
		e.markers[i] = append(e.markers[i], m)
		return
	}
	e.times = append(e.times, 0)
	e.markers = append(e.markers, nil)
	copy(e.times[i+1:], e.times[i:])
	copy(e.markers[i+1:], e.markers[i:])
	e.times[i] = t
	e.markers[i] = []EventMarker{m}
}

// Get returns the markers fired exactly at t.
func (e *WaveformEvents) Get(t Time) ([]EventMarker, bool) {
	i := sort.Search(len(e.times), func(i int) bool { return e.times[i] >= t })
	if i < len(e.times) && e.times[i] == t {
		return e.markers[i], true
	}
	return nil, false
}

// All iterates marker groups in ascending time order.
func (e *WaveformEvents) All() iter.Seq2[Time, []EventMarker] {
	return func(yield func(Time, []EventMarker) bool) {
		for i, t := range e.times {
			if !yield(t, e.markers[i]) {
				return
			}
		}
	}
}
