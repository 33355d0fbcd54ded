package engine

import "github.com/wavescope/wavescope/model"

// SelectedMode is the two-state display filter: Unselected shows every
// series, Selected shows only the remembered set. The zero value is
// Unselected.
type SelectedMode struct {
	entities map[model.EntityPath]struct{}
}

// Selected reports whether the filter is active.
func (m *SelectedMode) Selected() bool {
	return m.entities != nil
}

// Toggle flips the mode. Entering Selected with an empty candidate set is a
// no-op; leaving Selected always returns to Unselected and discards the
// remembered set.
func (m *SelectedMode) Toggle(candidates []model.EntityPath) {
	if m.entities != nil {
		m.entities = nil
		return
	}
	if len(candidates) == 0 {
		return
	}
	m.entities = make(map[model.EntityPath]struct{}, len(candidates))
	for _, e := range candidates {
		m.entities[e] = struct{}{}
	}
}

// Visible reports whether a series participates in the current frame.
func (m *SelectedMode) Visible(entity model.EntityPath) bool {
	if m.entities == nil {
		return true
	}
	_, ok := m.entities[entity]
	return ok
}

// Members returns the remembered set, nil when Unselected.
func (m *SelectedMode) Members() []model.EntityPath {
	if m.entities == nil {
		return nil
	}
	out := make([]model.EntityPath, 0, len(m.entities))
	for e := range m.entities {
		out = append(out, e)
	}
	return out
}
