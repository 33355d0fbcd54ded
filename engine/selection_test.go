package engine

import (
	"testing"

	"github.com/wavescope/wavescope/annotation"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/store"
)

func TestSelectedMode_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		setup      []model.EntityPath // first toggle, nil to skip
		toggle     []model.EntityPath
		wantActive bool
	}{
		{"unselected + empty set stays unselected", nil, nil, false},
		{"unselected + set selects", nil, []model.EntityPath{"A"}, true},
		{"selected + anything unselects", []model.EntityPath{"A"}, []model.EntityPath{"B"}, false},
		{"selected + empty unselects", []model.EntityPath{"A"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m SelectedMode
			if tt.setup != nil {
				m.Toggle(tt.setup)
			}
			m.Toggle(tt.toggle)
			if m.Selected() != tt.wantActive {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.wantActive)
			}
		})
	}
}

func TestSelectedMode_Visible(t *testing.T) {
	var m SelectedMode
	if !m.Visible("anything") {
		t.Error("unselected mode must show every entity")
	}

	m.Toggle([]model.EntityPath{"A/y1"})
	if !m.Visible("A/y1") {
		t.Error("selected entity must stay visible")
	}
	if m.Visible("B/z1") {
		t.Error("non-member must be hidden in selected mode")
	}

	m.Toggle(nil)
	if !m.Visible("B/z1") {
		t.Error("leaving selected mode must restore every entity")
	}
}

func TestSelectionFiltersFrame(t *testing.T) {
	st := store.NewMemoryStore()
	st.LogScalar("A/y1", 0, 1.0)
	st.LogScalar("B/z1", 0, 2.0)

	eng := New(st, annotation.NewStaticResolver(), DefaultConfig())
	eng.View.Selection.Toggle([]model.EntityPath{"B/z1"})

	frame, err := eng.Tick(false)
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if len(frame.Domains) != 1 || frame.Domains[0].Domain != "B" {
		t.Fatalf("domains = %+v, want only B", frame.Domains)
	}

	// Toggling out restores the full set on the next pass.
	eng.View.Selection.Toggle(nil)
	frame, err = eng.Tick(false)
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if len(frame.Domains) != 2 {
		t.Errorf("got %d domains after unselect, want 2", len(frame.Domains))
	}
}

func TestSecondMarker(t *testing.T) {
	var v ViewState

	if _, ok := v.SecondMarker(); ok {
		t.Error("marker should start unset")
	}

	v.SetSecondMarker(42)
	v.SetSecondMarker(99) // each set overwrites
	if m, ok := v.SecondMarker(); !ok || m != 99 {
		t.Errorf("marker = %d ok=%v, want 99", m, ok)
	}

	v.ClearSecondMarker()
	if _, ok := v.SecondMarker(); ok {
		t.Error("marker should be cleared")
	}
}
