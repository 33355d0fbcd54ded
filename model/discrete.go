package model

import (
	"iter"
	"sort"
)

// DiscreteKind selects how a discrete track is drawn.
type DiscreteKind int

const (
	// KindLine marks the steady-state ("normal") class, drawn as a flat trace.
	KindLine DiscreteKind = iota
	// KindBox marks every other class, drawn as a labeled interval box.
	KindBox
)

func (k DiscreteKind) String() string {
	if k == KindLine {
		return "line"
	}
	return "box"
}

// DiscreteTransition is a state change active from its timestamp until the
// next transition. An empty label means the class carries no display label.
type DiscreteTransition struct {
	Label string
	Color Color
	Kind  DiscreteKind
}

// DiscretePoints is a time-ordered mapping from Time to the transition that
// starts at that time, at most one per timestamp, plus the optional state
// logged before the first change.
type DiscretePoints struct {
	times       []Time
	transitions []DiscreteTransition

	// Init is the state in effect before the first transition, if logged.
	Init *DiscreteTransition
}

// Len returns the number of transitions, excluding Init.
func (d *DiscretePoints) Len() int {
	return len(d.times)
}

// IsEmpty reports whether no transitions were logged. Init alone does not
// make the track non-empty.
func (d *DiscretePoints) IsEmpty() bool {
	return len(d.times) == 0
}

// Push inserts a transition, replacing any transition already at that time.
func (d *DiscretePoints) Push(t Time, tr DiscreteTransition) {
	i := sort.Search(len(d.times), func(i int) bool { return d.times[i] >= t })
	if i < len(d.times) && d.times[i] == t {
		d.transitions[i] = tr
		return
	}
	d.times = append(d.times, 0)
	d.transitions = append(d.transitions, DiscreteTransition{})
	copy(d.times[i+1:], d.times[i:])
	copy(d.transitions[i+1:], d.transitions[i:])
	d.times[i] = t
	d.transitions[i] = tr
}

// Get returns the transition starting exactly at t.
func (d *DiscretePoints) Get(t Time) (*DiscreteTransition, bool) {
	i := sort.Search(len(d.times), func(i int) bool { return d.times[i] >= t })
	if i < len(d.times) && d.times[i] == t {
		return &d.transitions[i], true
	}
	return nil, false
}

// At returns the transition with the greatest time <= t, the state in
// effect at t. Init is not consulted: callers that need the pre-first-sample
// state read Init directly.
func (d *DiscretePoints) At(t Time) (Time, *DiscreteTransition, bool) {
	i := sort.Search(len(d.times), func(i int) bool { return d.times[i] > t })
	if i == 0 {
		return 0, nil, false
	}
	return d.times[i-1], &d.transitions[i-1], true
}

// All iterates transitions in ascending time order.
func (d *DiscretePoints) All() iter.Seq2[Time, DiscreteTransition] {
	return func(yield func(Time, DiscreteTransition) bool) {
		for i, t := range d.times {
			if !yield(t, d.transitions[i]) {
				return
			}
		}
	}
}
