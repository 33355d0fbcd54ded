package model

// WaveformSeries is one entity's aggregated timeline for a single frame:
// its analog points, discrete transitions, the tightest time bound covering
// every contributing sample, and a deterministic display color derived from
// the entity path.
//
// Invariant: MinTime <= MaxTime whenever any point exists. A series with no
// analog and no discrete points is empty and never reaches the aggregator.
type WaveformSeries struct {
	Entity   EntityPath
	MinTime  Time
	MaxTime  Time
	Analog   AnalogPoints
	Discrete DiscretePoints
	Color    Color
}

// Len returns the total number of logged points, analog plus discrete.
func (s *WaveformSeries) Len() int {
	return s.Analog.Len() + s.Discrete.Len()
}

// Empty reports whether the series carries no analog and no discrete points.
func (s *WaveformSeries) Empty() bool {
	return s.Len() == 0
}
