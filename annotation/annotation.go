// Package annotation resolves discrete class ids to display labels and
// colors. The engine consults a Resolver for every transition and event it
// ingests; classes the resolver does not know are dropped, and classes
// without an assigned color fall back to a deterministic auto-color.
package annotation

import (
	"github.com/wavescope/wavescope/model"
)

// Info is the resolved annotation of one class: an optional label and an
// optional explicit color.
type Info struct {
	Label string
	Color *model.Color
}

// DisplayColor returns the explicit color when assigned, otherwise the
// deterministic auto-color keyed by the class id.
func (i Info) DisplayColor(class model.ClassID) model.Color {
	if i.Color != nil {
		return *i.Color
	}
	return AutoColor(uint64(class))
}

// Resolver maps (entity, class id) to annotation info. ok=false means the
// class is unknown for that entity; an error means the resolution service
// itself failed and the whole aggregation pass must abort.
type Resolver interface {
	Resolve(entity model.EntityPath, class model.ClassID) (info Info, ok bool, err error)
}

// StaticResolver is a Resolver backed by per-entity class tables, with an
// optional shared table consulted when the entity has no table of its own.
type StaticResolver struct {
	byEntity map[model.EntityPath]map[model.ClassID]Info
	shared   map[model.ClassID]Info
}

// NewStaticResolver returns an empty resolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		byEntity: make(map[model.EntityPath]map[model.ClassID]Info),
		shared:   make(map[model.ClassID]Info),
	}
}

// SetClass registers a class for one entity.
func (r *StaticResolver) SetClass(entity model.EntityPath, class model.ClassID, info Info) {
	table := r.byEntity[entity]
	if table == nil {
		table = make(map[model.ClassID]Info)
		r.byEntity[entity] = table
	}
	table[class] = info
}

// SetSharedClass registers a class visible to every entity without its own
// table entry for that class.
func (r *StaticResolver) SetSharedClass(class model.ClassID, info Info) {
	r.shared[class] = info
}

// Resolve implements Resolver. It never fails; unknown classes report
// ok=false.
func (r *StaticResolver) Resolve(entity model.EntityPath, class model.ClassID) (Info, bool, error) {
	if info, ok := r.byEntity[entity][class]; ok {
		return info, true, nil
	}
	if info, ok := r.shared[class]; ok {
		return info, true, nil
	}
	return Info{}, false, nil
}
