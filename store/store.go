// Package store supplies time-ordered sample streams to the aggregation
// engine. A store holds, per entity, up to five independently queryable
// component kinds; every query returns entries in ascending time order.
package store

import (
	"errors"

	"github.com/wavescope/wavescope/model"
)

// Kind names one queryable component stream of an entity.
type Kind string

const (
	// KindAnalog is the continuous scalar stream.
	KindAnalog Kind = "analog"
	// KindState is the discrete state-change stream.
	KindState Kind = "state"
	// KindStateInit carries the state in effect before the first change.
	KindStateInit Kind = "state_init"
	// KindStateNormal designates the steady-state class for the entity.
	KindStateNormal Kind = "state_normal"
	// KindEvent is the punctual event stream.
	KindEvent Kind = "event"
)

// ErrNoData reports that an entity has no samples of the queried kind.
// Callers treat it as an empty, successful result.
var ErrNoData = errors.New("store: no samples of requested kind")

// Sample is one analog entry: a timestamp and its value bag. A well-formed
// entry carries exactly one value; zero- or multi-valued bags are malformed
// and skipped by the engine.
type Sample struct {
	Time   model.Time
	Values []float64
}

// ClassSample is one discrete or event entry: a timestamp and its class-id
// bag. State kinds require exactly one class per entry; event entries may
// carry several classes fired at the same instant.
type ClassSample struct {
	Time    model.Time
	Classes []model.ClassID
}

// Store is the sample source consumed by the engine. Implementations return
// ErrNoData when the entity has nothing of the requested kind, and keep
// entries unique and ascending by time. Queries always cover the full
// recorded time range.
type Store interface {
	// Entities lists every entity with at least one sample of any kind,
	// in a stable order.
	Entities() ([]model.EntityPath, error)

	// Scalars returns the analog stream of an entity.
	Scalars(entity model.EntityPath) ([]Sample, error)

	// Classes returns one of the class-valued streams of an entity:
	// KindState, KindStateInit, KindStateNormal, or KindEvent.
	Classes(entity model.EntityPath, kind Kind) ([]ClassSample, error)
}
