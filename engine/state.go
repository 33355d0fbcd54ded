package engine

import "github.com/wavescope/wavescope/model"

// ViewState is the only state that survives across frames: the selection
// filter, the secondary time marker, the sticky per-domain bounds with the
// sample count that produced them, and the first-seen domain order. It is
// read at the start of a pass and overwritten at the end, never shared.
type ViewState struct {
	// Selection filters which entities the next pass aggregates.
	Selection SelectedMode

	secondMarker    *model.Time
	domainIndex     map[model.Domain]int
	bounds          map[model.Domain]Bounds
	lastSampleCount int
}

// SetSecondMarker places the secondary time marker, overwriting any
// previous position.
func (v *ViewState) SetSecondMarker(t model.Time) {
	v.secondMarker = &t
}

// ClearSecondMarker removes the secondary time marker.
func (v *ViewState) ClearSecondMarker() {
	v.secondMarker = nil
}

// SecondMarker returns the marker position, ok=false when unset.
func (v *ViewState) SecondMarker() (model.Time, bool) {
	if v.secondMarker == nil {
		return 0, false
	}
	return *v.secondMarker, true
}

// domainOrder returns the sticky first-seen index of a domain, assigning
// the next free index on first sight.
func (v *ViewState) domainOrder(d model.Domain) int {
	if v.domainIndex == nil {
		v.domainIndex = make(map[model.Domain]int)
	}
	i, ok := v.domainIndex[d]
	if !ok {
		i = len(v.domainIndex)
		v.domainIndex[d] = i
	}
	return i
}
