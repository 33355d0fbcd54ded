package engine

import (
	"errors"

	"github.com/wavescope/wavescope/annotation"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/store"
)

// buildAll builds one series per entity and the shared event timeline.
// store.ErrNoData per kind is an empty success; any other store or resolver
// error aborts the whole pass.
func buildAll(st store.Store, res annotation.Resolver) ([]*model.WaveformSeries, *model.WaveformEvents, error) {
	entities, err := st.Entities()
	if err != nil {
		return nil, nil, err
	}

	events := &model.WaveformEvents{}
	var series []*model.WaveformSeries
	for _, entity := range entities {
		s, err := buildSeries(st, res, entity, events)
		if err != nil {
			return nil, nil, err
		}
		if s != nil {
			series = append(series, s)
		}
	}
	return series, events, nil
}

// buildSeries aggregates one entity's streams. It returns nil for an entity
// that contributed nothing: no samples at all, or nothing that survived the
// malformed-sample and resolution filters.
func buildSeries(st store.Store, res annotation.Resolver, entity model.EntityPath, events *model.WaveformEvents) (*model.WaveformSeries, error) {
	series := &model.WaveformSeries{
		Entity: entity,
		Color:  annotation.EntityColor(entity),
	}

	var minTime, maxTime *model.Time
	seen := func(t model.Time) {
		if minTime == nil {
			minTime, maxTime = &t, new(model.Time)
			*maxTime = t
			return
		}
		*minTime = min(*minTime, t)
		*maxTime = max(*maxTime, t)
	}

	// Analog: entries whose value bag is not exactly one value are
	// malformed and silently skipped.
	scalars, err := st.Scalars(entity)
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}
	for _, sample := range scalars {
		if len(sample.Values) != 1 {
			continue
		}
		seen(sample.Time)
		series.Analog.Push(sample.Time, sample.Values[0])
	}

	// The normal stream supplies at most one class id: transitions of that
	// class render as a flat line, every other class as a box.
	var normal *model.ClassID
	normals, err := st.Classes(entity, store.KindStateNormal)
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}
	for _, sample := range normals {
		if len(sample.Classes) != 1 {
			continue
		}
		c := sample.Classes[0]
		normal = &c
		break
	}

	kindOf := func(class model.ClassID) model.DiscreteKind {
		if normal != nil && class == *normal {
			return model.KindLine
		}
		return model.KindBox
	}

	states, err := st.Classes(entity, store.KindState)
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}
	for _, sample := range states {
		if len(sample.Classes) != 1 {
			continue
		}
		seen(sample.Time)

		class := sample.Classes[0]
		info, ok, err := res.Resolve(entity, class)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Unknown class id: the transition is dropped.
			continue
		}
		series.Discrete.Push(sample.Time, model.DiscreteTransition{
			Label: info.Label,
			Color: info.DisplayColor(class),
			Kind:  kindOf(class),
		})
	}

	inits, err := st.Classes(entity, store.KindStateInit)
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}
	for _, sample := range inits {
		if len(sample.Classes) != 1 {
			continue
		}
		class := sample.Classes[0]
		info, ok, err := res.Resolve(entity, class)
		if err != nil {
			return nil, err
		}
		if ok {
			series.Discrete.Init = &model.DiscreteTransition{
				Label: info.Label,
				Color: info.DisplayColor(class),
				Kind:  kindOf(class),
			}
		}
		break
	}

	// Events: one entry may fire several classes at the same instant; each
	// resolvable class becomes one marker on the shared timeline.
	evs, err := st.Classes(entity, store.KindEvent)
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return nil, err
	}
	for _, sample := range evs {
		if len(sample.Classes) == 0 {
			continue
		}
		seen(sample.Time)
		for _, class := range sample.Classes {
			info, ok, err := res.Resolve(entity, class)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			events.Push(sample.Time, model.EventMarker{
				Entity: entity,
				Label:  info.Label,
				Color:  info.DisplayColor(class),
			})
		}
	}

	if minTime == nil && maxTime == nil {
		return nil, nil
	}
	series.MinTime = *minTime
	series.MaxTime = *maxTime

	// A series that kept no analog and no discrete points never reaches
	// the aggregator, even if it extended the event timeline.
	if series.Empty() {
		return nil, nil
	}
	return series, nil
}
