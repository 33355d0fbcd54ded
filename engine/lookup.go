package engine

import "github.com/wavescope/wavescope/model"

// CursorTimeTolerance is the symmetric window, in time units, within which
// an analog sample counts as an exact cursor hit.
const CursorTimeTolerance model.Time = 1

// AnalogSample is the analog half of a lookup result. Interpolated marks a
// value computed between two real samples rather than directly observed.
type AnalogSample struct {
	Value        float64
	Interpolated bool
	OK           bool
}

// DiscreteHit is the discrete half of a lookup result: the transition in
// effect at the query time and the time it started. Transition is nil when
// the query precedes every logged transition.
type DiscreteHit struct {
	Time       model.Time
	Transition *model.DiscreteTransition
}

// Lookup answers "what is this series' value at time t" for the cursor.
//
// Analog: an exact sample within ±CursorTimeTolerance of t is returned
// verbatim; otherwise the nearest samples strictly before and strictly
// after t are linearly interpolated. With only one side available there is
// no answer.
//
// Discrete: nearest-prior semantics, the transition with the greatest time
// <= t. Init is not consulted; callers needing the pre-first-sample state
// read it off the series directly.
//
// Lookup performs no mutation and is safe to call once per visible series
// per frame.
func Lookup(series *model.WaveformSeries, t model.Time) (AnalogSample, DiscreteHit) {
	var analog AnalogSample
	if _, pt, ok := series.Analog.First(t-CursorTimeTolerance, t+CursorTimeTolerance); ok {
		analog = AnalogSample{Value: pt.Value, OK: true}
	} else {
		t1, p1, okBefore := series.Analog.Before(t)
		t2, p2, okAfter := series.Analog.After(t)
		if okBefore && okAfter {
			slope := (p2.Value - p1.Value) / float64(t2-t1)
			analog = AnalogSample{
				Value:        p1.Value + slope*float64(t-t1),
				Interpolated: true,
				OK:           true,
			}
		}
	}

	var hit DiscreteHit
	if ts, tr, ok := series.Discrete.At(t); ok {
		hit = DiscreteHit{Time: ts, Transition: tr}
	}
	return analog, hit
}
