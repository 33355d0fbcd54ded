package model

import (
	"iter"
	"sort"
)

// AnalogPoint is a single floating-point sample at one timestamp.
type AnalogPoint struct {
	Value float64
}

// Range is a closed value interval.
type Range struct {
	Min, Max float64
}

// AnalogPoints is a time-ordered mapping from Time to AnalogPoint with
// unique keys and ascending iteration. The value range is maintained
// incrementally as points are inserted: nil iff the mapping is empty,
// otherwise the exact min/max of all contained values.
type AnalogPoints struct {
	times  []Time
	points []AnalogPoint
	yRange *Range
}

// Len returns the number of points.
func (p *AnalogPoints) Len() int {
	return len(p.times)
}

// YRange returns the value range, or nil when the mapping is empty.
func (p *AnalogPoints) YRange() *Range {
	if p.yRange == nil {
		return nil
	}
	r := *p.yRange
	return &r
}

// Push inserts a point, replacing any point already at that time.
func (p *AnalogPoints) Push(t Time, value float64) {
	i := sort.Search(len(p.times), func(i int) bool { return p.times[i] >= t })
	if i < len(p.times) && p.times[i] == t {
		p.points[i] = AnalogPoint{Value: value}
		p.recomputeRange()
		return
	}
	p.times = append(p.times, 0)
	p.points = append(p.points, AnalogPoint{})
	copy(p.times[i+1:], p.times[i:])
	copy(p.points[i+1:], p.points[i:])
	p.times[i] = t
	p.points[i] = AnalogPoint{Value: value}

	if p.yRange == nil {
		p.yRange = &Range{Min: value, Max: value}
	} else {
		if value < p.yRange.Min {
			p.yRange.Min = value
		}
		if value > p.yRange.Max {
			p.yRange.Max = value
		}
	}
}

// recomputeRange rebuilds the range from scratch. Only needed when a
// replacement may have removed the previous extreme.
func (p *AnalogPoints) recomputeRange() {
	if len(p.points) == 0 {
		p.yRange = nil
		return
	}
	r := Range{Min: p.points[0].Value, Max: p.points[0].Value}
	for _, pt := range p.points[1:] {
		if pt.Value < r.Min {
			r.Min = pt.Value
		}
		if pt.Value > r.Max {
			r.Max = pt.Value
		}
	}
	p.yRange = &r
}

// Get returns the point logged exactly at t.
func (p *AnalogPoints) Get(t Time) (AnalogPoint, bool) {
	i := sort.Search(len(p.times), func(i int) bool { return p.times[i] >= t })
	if i < len(p.times) && p.times[i] == t {
		return p.points[i], true
	}
	return AnalogPoint{}, false
}

// First returns the earliest point whose time is within [lo, hi].
func (p *AnalogPoints) First(lo, hi Time) (Time, AnalogPoint, bool) {
	i := sort.Search(len(p.times), func(i int) bool { return p.times[i] >= lo })
	if i < len(p.times) && p.times[i] <= hi {
		return p.times[i], p.points[i], true
	}
	return 0, AnalogPoint{}, false
}

// Before returns the latest point strictly before t.
func (p *AnalogPoints) Before(t Time) (Time, AnalogPoint, bool) {
	i := sort.Search(len(p.times), func(i int) bool { return p.times[i] >= t })
	if i == 0 {
		return 0, AnalogPoint{}, false
	}
	return p.times[i-1], p.points[i-1], true
}

// After returns the earliest point strictly after t.
func (p *AnalogPoints) After(t Time) (Time, AnalogPoint, bool) {
	i := sort.Search(len(p.times), func(i int) bool { return p.times[i] > t })
	if i == len(p.times) {
		return 0, AnalogPoint{}, false
	}
	return p.times[i], p.points[i], true
}

// All iterates points in ascending time order.
func (p *AnalogPoints) All() iter.Seq2[Time, AnalogPoint] {
	return func(yield func(Time, AnalogPoint) bool) {
		for i, t := range p.times {
			if !yield(t, p.points[i]) {
				return
			}
		}
	}
}
