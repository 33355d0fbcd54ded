package store

import (
	"sort"

	"github.com/wavescope/wavescope/model"
)

// MemoryStore is an in-memory Store. It is the backing for tests and for
// the built-in demo recording; the Log helpers keep entries unique and
// ascending by time, merging values logged at the same instant into one bag.
type MemoryStore struct {
	scalars map[model.EntityPath][]Sample
	classes map[model.EntityPath]map[Kind][]ClassSample
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scalars: make(map[model.EntityPath][]Sample),
		classes: make(map[model.EntityPath]map[Kind][]ClassSample),
	}
}

// LogScalar records one analog value. Logging twice at the same time grows
// the value bag, which the engine will then drop as malformed.
func (m *MemoryStore) LogScalar(entity model.EntityPath, t model.Time, value float64) {
	s := m.scalars[entity]
	i := sort.Search(len(s), func(i int) bool { return s[i].Time >= t })
	if i < len(s) && s[i].Time == t {
		s[i].Values = append(s[i].Values, value)
		return
	}
	s = append(s, Sample{})
	copy(s[i+1:], s[i:])
	s[i] = Sample{Time: t, Values: []float64{value}}
	m.scalars[entity] = s
}

// LogClass records one class id on the given stream kind.
func (m *MemoryStore) LogClass(entity model.EntityPath, kind Kind, t model.Time, class model.ClassID) {
	byKind := m.classes[entity]
	if byKind == nil {
		byKind = make(map[Kind][]ClassSample)
		m.classes[entity] = byKind
	}
	s := byKind[kind]
	i := sort.Search(len(s), func(i int) bool { return s[i].Time >= t })
	if i < len(s) && s[i].Time == t {
		s[i].Classes = append(s[i].Classes, class)
		return
	}
	s = append(s, ClassSample{})
	copy(s[i+1:], s[i:])
	s[i] = ClassSample{Time: t, Classes: []model.ClassID{class}}
	byKind[kind] = s
}

// LogState records a state change at t.
func (m *MemoryStore) LogState(entity model.EntityPath, t model.Time, class model.ClassID) {
	m.LogClass(entity, KindState, t, class)
}

// LogStateInit records the pre-first-change state.
func (m *MemoryStore) LogStateInit(entity model.EntityPath, class model.ClassID) {
	m.LogClass(entity, KindStateInit, 0, class)
}

// LogStateNormal designates the steady-state class for the entity.
func (m *MemoryStore) LogStateNormal(entity model.EntityPath, class model.ClassID) {
	m.LogClass(entity, KindStateNormal, 0, class)
}

// LogEvent records a punctual event at t.
func (m *MemoryStore) LogEvent(entity model.EntityPath, t model.Time, class model.ClassID) {
	m.LogClass(entity, KindEvent, t, class)
}

// Entities lists every logged entity in ascending path order.
func (m *MemoryStore) Entities() ([]model.EntityPath, error) {
	seen := make(map[model.EntityPath]bool)
	for e := range m.scalars {
		seen[e] = true
	}
	for e := range m.classes {
		seen[e] = true
	}
	out := make([]model.EntityPath, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Scalars returns the analog stream of an entity.
func (m *MemoryStore) Scalars(entity model.EntityPath) ([]Sample, error) {
	s, ok := m.scalars[entity]
	if !ok || len(s) == 0 {
		return nil, ErrNoData
	}
	return s, nil
}

// Classes returns one class-valued stream of an entity.
func (m *MemoryStore) Classes(entity model.EntityPath, kind Kind) ([]ClassSample, error) {
	s, ok := m.classes[entity][kind]
	if !ok || len(s) == 0 {
		return nil, ErrNoData
	}
	return s, nil
}
