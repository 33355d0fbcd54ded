package engine

import (
	"testing"

	"github.com/wavescope/wavescope/model"
)

func twoPointSeries() *model.WaveformSeries {
	s := &model.WaveformSeries{Entity: "a/x", MinTime: 0, MaxTime: 10}
	s.Analog.Push(0, 0.0)
	s.Analog.Push(10, 10.0)
	return s
}

func TestLookup_Analog(t *testing.T) {
	s := twoPointSeries()

	tests := []struct {
		name         string
		t            model.Time
		wantOK       bool
		wantValue    float64
		interpolated bool
	}{
		{"exact hit", 0, true, 0.0, false},
		{"exact hit at end", 10, true, 10.0, false},
		{"within tolerance window", 9, true, 10.0, false},
		{"interpolated midpoint", 5, true, 5.0, true},
		{"interpolated off-center", 3, true, 3.0, true},
		{"before first point", -2, false, 0, false},
		{"after last point", 12, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Lookup(s, tt.t)
			if got.OK != tt.wantOK {
				t.Fatalf("Lookup(%d).OK = %v, want %v", tt.t, got.OK, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if got.Value != tt.wantValue {
				t.Errorf("Lookup(%d).Value = %v, want %v", tt.t, got.Value, tt.wantValue)
			}
			if got.Interpolated != tt.interpolated {
				t.Errorf("Lookup(%d).Interpolated = %v, want %v", tt.t, got.Interpolated, tt.interpolated)
			}
		})
	}
}

func TestLookup_ToleranceReturnsVerbatim(t *testing.T) {
	// A sample within the ±1 window wins over interpolation, even when an
	// interpolated value would differ.
	s := &model.WaveformSeries{Entity: "a/x"}
	s.Analog.Push(0, 0.0)
	s.Analog.Push(4, 100.0)

	got, _ := Lookup(s, 3)
	if !got.OK || got.Interpolated {
		t.Fatalf("Lookup(3) = %+v, want exact hit", got)
	}
	if got.Value != 100.0 {
		t.Errorf("Lookup(3).Value = %v, want 100.0 (sample at t=4)", got.Value)
	}
}

func TestLookup_SingleSidedReturnsNothing(t *testing.T) {
	s := &model.WaveformSeries{Entity: "a/x"}
	s.Analog.Push(0, 1.0)

	if got, _ := Lookup(s, 50); got.OK {
		t.Errorf("Lookup(50) with only a prior point = %+v, want no value", got)
	}
}

func TestLookup_Discrete(t *testing.T) {
	s := &model.WaveformSeries{Entity: "d/s"}
	init := model.DiscreteTransition{Label: "BOOT", Kind: model.KindLine}
	s.Discrete.Init = &init
	s.Discrete.Push(10, model.DiscreteTransition{Label: "RUN", Kind: model.KindBox})

	// Before the first transition, Init is not consulted.
	if _, hit := Lookup(s, 5); hit.Transition != nil {
		t.Errorf("Lookup(5) discrete = %+v, want none (init is explicit-only)", hit)
	}

	_, hit := Lookup(s, 10)
	if hit.Transition == nil || hit.Transition.Label != "RUN" || hit.Time != 10 {
		t.Errorf("Lookup(10) discrete = %+v, want RUN@10", hit)
	}

	_, hit = Lookup(s, 1000)
	if hit.Transition == nil || hit.Transition.Label != "RUN" {
		t.Errorf("Lookup(1000) discrete = %+v, want RUN (nearest prior)", hit)
	}
}
