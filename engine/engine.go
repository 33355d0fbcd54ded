// Package engine turns raw per-entity sample streams into per-domain
// waveform series ready for synchronized multi-track display, and answers
// point-in-time lookups under a moving cursor.
//
// One Tick runs a full aggregation + layout pass synchronously. Everything
// it builds is owned by the returned frame and rebuilt from scratch on the
// next tick; the only state carried across ticks lives in ViewState.
package engine

import (
	"sort"

	"github.com/wavescope/wavescope/annotation"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/store"
)

// Engine runs one aggregation + query + layout pass per host frame.
type Engine struct {
	store    store.Store
	resolver annotation.Resolver
	cfg      Config

	// View is the cross-frame view state: selection, secondary marker,
	// domain ordering, and the previous layout used for sticky bounds.
	View ViewState
}

// New returns an engine reading from st and resolving classes through res.
func New(st store.Store, res annotation.Resolver, cfg Config) *Engine {
	e := &Engine{store: st, resolver: res, cfg: cfg}
	e.View.bounds = make(map[model.Domain]Bounds)
	return e
}

// Frame is one pass's read-only snapshot for the rendering collaborator.
// It stays valid until the next Tick replaces it.
type Frame struct {
	// Domains in first-seen order, each holding only visible, non-empty
	// series. Domains whose every series was filtered out do not appear.
	Domains []DomainView

	// Events is the shared event timeline across all visible entities.
	Events *model.WaveformEvents

	// MinTime and MaxTime bound every visible sample. Zero/zero when the
	// frame holds no series at all.
	MinTime, MaxTime model.Time

	// SampleCount totals visible analog+discrete points plus event
	// timestamps; layout uses it to detect new data.
	SampleCount int
}

// DomainView is one domain's plotted series set with its computed layout.
type DomainView struct {
	Domain model.Domain
	Series []*model.WaveformSeries

	// MinTime and MaxTime bound this domain's samples.
	MinTime, MaxTime model.Time

	// Bounds is the padded value-axis range currently in view.
	Bounds Bounds

	// HasAnalog is false when no series contributes an analog range and
	// the default [-1, 1] band is in effect.
	HasAnalog bool

	// Tracks places this domain's discrete series on the value axis.
	Tracks []DiscreteTrack

	// Err marks the domain unrenderable for this frame (malformed value
	// bounds). The rest of the frame is unaffected.
	Err error
}

// Tick runs one full pass. reset forces bounds recomputation, like a
// double-click view reset. On error the caller keeps the previous frame:
// a pass either completes or leaves no trace.
func (e *Engine) Tick(reset bool) (*Frame, error) {
	series, events, err := buildAll(e.store, e.resolver)
	if err != nil {
		return nil, err
	}

	frame := &Frame{Events: events}

	// Visibility filter and first-seen domain ordering.
	type domainData struct {
		domain model.Domain
		series []*model.WaveformSeries
	}
	var domains []domainData
	byDomain := make(map[model.Domain]int)

	for _, s := range series {
		if !e.View.Selection.Visible(s.Entity) {
			continue
		}
		d := s.Entity.Domain()
		i, ok := byDomain[d]
		if !ok {
			i = len(domains)
			byDomain[d] = i
			domains = append(domains, domainData{domain: d})
		}
		domains[i].series = append(domains[i].series, s)
	}

	// First-seen ordering is sticky across frames: a domain keeps the
	// index it was assigned the first time it ever appeared.
	for _, d := range domains {
		e.View.domainOrder(d.domain)
	}
	sort.SliceStable(domains, func(i, j int) bool {
		return e.View.domainOrder(domains[i].domain) < e.View.domainOrder(domains[j].domain)
	})

	for _, d := range domains {
		dv := DomainView{Domain: d.domain, Series: d.series}
		dv.MinTime, dv.MaxTime = timeBounds(d.series)
		for _, s := range d.series {
			frame.SampleCount += s.Len()
		}
		frame.Domains = append(frame.Domains, dv)
	}
	frame.SampleCount += events.Len()

	if len(frame.Domains) > 0 {
		frame.MinTime = frame.Domains[0].MinTime
		frame.MaxTime = frame.Domains[0].MaxTime
		for _, dv := range frame.Domains[1:] {
			frame.MinTime = min(frame.MinTime, dv.MinTime)
			frame.MaxTime = max(frame.MaxTime, dv.MaxTime)
		}
	}

	recompute := reset || frame.SampleCount != e.View.lastSampleCount
	for i := range frame.Domains {
		e.planDomain(&frame.Domains[i], recompute)
	}
	e.View.lastSampleCount = frame.SampleCount

	return frame, nil
}

// timeBounds folds the series' min/max times.
func timeBounds(series []*model.WaveformSeries) (model.Time, model.Time) {
	lo, hi := series[0].MinTime, series[0].MaxTime
	for _, s := range series[1:] {
		lo = min(lo, s.MinTime)
		hi = max(hi, s.MaxTime)
	}
	return lo, hi
}
