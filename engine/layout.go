package engine

import (
	"errors"
	"fmt"

	"github.com/wavescope/wavescope/model"
)

// Config holds the layout fractions. All of them scale the value axis; the
// defaults reproduce the reference display proportions.
type Config struct {
	// PaddingFrac is the symmetric padding added to a domain's value span
	// when bounds are recomputed.
	PaddingFrac float64
	// TrackSpanFrac is the share of the value span that discrete tracks
	// may occupy.
	TrackSpanFrac float64
	// BoxFrac is the share of one track slot filled by its box.
	BoxFrac float64
	// StrokeFrac sizes the box outline relative to the box height.
	StrokeFrac float64
	// StrokeMin floors the outline width at a pixel-equivalent constant.
	StrokeMin float64
}

// DefaultConfig returns the reference layout proportions.
func DefaultConfig() Config {
	return Config{
		PaddingFrac:   0.20,
		TrackSpanFrac: 0.95,
		BoxFrac:       0.80,
		StrokeFrac:    0.10,
		StrokeMin:     1.0,
	}
}

// Bounds is a plotted value-axis range.
type Bounds struct {
	Min, Max float64
}

// Span returns the bounds height.
func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// ErrBadBounds reports a malformed folded value range (min > max). The
// affected domain cannot be rendered this frame; other domains are fine.
var ErrBadBounds = errors.New("engine: malformed value bounds")

// DiscreteTrack is the vertical placement of one series' discrete points,
// overlaid on the domain's continuous value axis.
type DiscreteTrack struct {
	Entity model.EntityPath

	// SeriesColor outlines the boxes so stacked tracks stay attributable.
	SeriesColor model.Color

	// Y is the slot's vertical center on the value axis.
	Y float64
	// BoxHeight is the box extent within the slot, in value units.
	BoxHeight float64
	// Stroke is the outline width, floored at Config.StrokeMin.
	Stroke float64

	// Intervals are the box-kind spans, chronological.
	Intervals []BoxInterval

	// Lines are the line-kind transitions, each drawn as a flat trace
	// across the full visible time range at Y.
	Lines []model.DiscreteTransition
}

// BoxInterval is one box-kind transition's visible span: from its own
// timestamp to the next transition's, or to the domain's max time for the
// last one.
type BoxInterval struct {
	Start, End model.Time
	Transition model.DiscreteTransition
}

// planDomain computes the domain's value bounds and discrete track layout.
// When recompute is false the previously stored bounds stay in effect
// (sticky zoom), but track placement still follows the current bounds.
func (e *Engine) planDomain(dv *DomainView, recompute bool) {
	// Fold every series' analog range.
	var folded *model.Range
	for _, s := range dv.Series {
		r := s.Analog.YRange()
		if r == nil {
			continue
		}
		if folded == nil {
			folded = r
			continue
		}
		folded.Min = min(folded.Min, r.Min)
		folded.Max = max(folded.Max, r.Max)
	}

	var raw Bounds
	switch {
	case folded == nil:
		raw = Bounds{Min: -1, Max: 1}
	case folded.Min == folded.Max:
		raw = Bounds{Min: folded.Min - 0.5, Max: folded.Max + 0.5}
	case folded.Min < folded.Max:
		raw = Bounds{Min: folded.Min, Max: folded.Max}
	default:
		dv.Err = fmt.Errorf("%w: domain %q folded to [%g, %g]", ErrBadBounds, dv.Domain, folded.Min, folded.Max)
		return
	}
	dv.HasAnalog = folded != nil

	prev, havePrev := e.View.bounds[dv.Domain]
	if recompute || !havePrev {
		delta := raw.Span() * e.cfg.PaddingFrac
		dv.Bounds = Bounds{Min: raw.Min - delta, Max: raw.Max + delta}
		e.View.bounds[dv.Domain] = dv.Bounds
	} else {
		dv.Bounds = prev
	}

	e.planTracks(dv)
}

// planTracks stacks the domain's discrete series within the track span.
// Domains without analog content place tracks against the fixed [-1, 1]
// band rather than the padded view bounds.
func (e *Engine) planTracks(dv *DomainView) {
	place := dv.Bounds
	if !dv.HasAnalog {
		place = Bounds{Min: -1, Max: 1}
	}

	var discrete []*model.WaveformSeries
	for _, s := range dv.Series {
		if !s.Discrete.IsEmpty() {
			discrete = append(discrete, s)
		}
	}
	if len(discrete) == 0 {
		return
	}

	span := place.Span() * e.cfg.TrackSpanFrac
	step := span / float64(len(discrete))
	boxHeight := step * e.cfg.BoxFrac
	stroke := max(boxHeight*e.cfg.StrokeFrac, e.cfg.StrokeMin)
	top := place.Max - step/2

	for l, s := range discrete {
		track := DiscreteTrack{
			Entity:      s.Entity,
			SeriesColor: s.Color,
			Y:           top - float64(l)*step,
			BoxHeight:   boxHeight,
			Stroke:      stroke,
		}

		// Chain: init pinned at the domain's min time, then the logged
		// transitions, terminated by a transparent sentinel at max time.
		type element struct {
			t  model.Time
			tr model.DiscreteTransition
		}
		var chain []element
		if s.Discrete.Init != nil {
			chain = append(chain, element{t: dv.MinTime, tr: *s.Discrete.Init})
		}
		for t, tr := range s.Discrete.All() {
			chain = append(chain, element{t: t, tr: tr})
		}
		chain = append(chain, element{t: dv.MaxTime, tr: model.DiscreteTransition{Color: model.Transparent, Kind: model.KindLine}})

		for i := 0; i+1 < len(chain); i++ {
			cur, next := chain[i], chain[i+1]
			switch cur.tr.Kind {
			case model.KindBox:
				track.Intervals = append(track.Intervals, BoxInterval{
					Start:      cur.t,
					End:        next.t,
					Transition: cur.tr,
				})
			case model.KindLine:
				track.Lines = append(track.Lines, cur.tr)
			}
		}

		dv.Tracks = append(dv.Tracks, track)
	}
}
