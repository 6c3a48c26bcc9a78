package validation

import (
	"fmt"
	"sync"
)

// HitStats counts what happened to the hits of one field.
type HitStats struct {
	Events  int64
	Hits    int
	Filled  int
	Skipped int
}

func (s *HitStats) add(o HitStats) {
	s.Events += o.Events
	s.Hits += o.Hits
	s.Filled += o.Filled
	s.Skipped += o.Skipped
}

// eventHits is the hit list of one event with its weights, which are nil
// in count mode.
type eventHits struct {
	Event   int64
	Calo    []string
	Tracker []int
	Weights []float64
}

// accumulator fills the grids of one field. Each worker owns one.
type accumulator struct {
	spec    FieldSpec
	calo    CaloGrids
	tracker *Grid
	stats   HitStats
	warn    *warner
}

func newAccumulator(spec FieldSpec, warn *warner) *accumulator {
	a := &accumulator{spec: spec, warn: warn}
	switch spec.Kind {
	case CalorimeterMap:
		a.calo = NewCaloGrids()
	case TrackerMap:
		a.tracker = NewGrid(TrackerModule)
	}
	return a
}

func (a *accumulator) add(evt eventHits) {
	a.stats.Events++
	for i, hit := range evt.Calo {
		a.stats.Hits++
		pos, err := DecodeCaloHit(hit)
		if err == nil {
			if evt.Weights != nil {
				err = a.calo.FillWeighted(pos, evt.Weights[i])
			} else {
				err = a.calo.Fill(pos)
			}
		}
		a.record(evt.Event, hit, err)
	}
	for i, packed := range evt.Tracker {
		a.stats.Hits++
		cell := DecodeTrackerCell(packed)
		var err error
		if evt.Weights != nil {
			err = a.tracker.FillWeighted(cell.Layer, cell.Row, evt.Weights[i])
		} else {
			err = a.tracker.Fill(cell.Layer, cell.Row)
		}
		a.record(evt.Event, fmt.Sprint(packed), err)
	}
}

func (a *accumulator) record(ievt int64, hit string, err error) {
	if err == nil {
		a.stats.Filled++
		return
	}
	a.stats.Skipped++
	a.warn.skip(ievt, hit, err)
}

func (a *accumulator) merge(other *accumulator) error {
	a.stats.add(other.stats)
	if a.calo != nil {
		return a.calo.Merge(other.calo)
	}
	if a.tracker != nil {
		return a.tracker.Merge(other.tracker)
	}
	return nil
}

// warner reports skipped hits. Only the first maxWarnings of a field are
// printed unless every warning was asked for.
type warner struct {
	mu       sync.Mutex
	logger   Logger
	field    string
	limit    int
	reported int
}

const maxWarnings = 10

func newWarner(logger Logger, field string, verbosity int) *warner {
	limit := maxWarnings
	if verbosity > 1 {
		limit = -1
	}
	return &warner{logger: logger, field: field, limit: limit}
}

func (w *warner) skip(ievt int64, hit string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reported++
	if w.limit >= 0 && w.reported > w.limit {
		return
	}
	message := fmt.Sprintf("%s: skipping hit %q in event %d: %v", w.field, hit, ievt, err)
	w.logger.Warn(message, "hits")
	if w.reported == w.limit {
		w.logger.Warn(fmt.Sprintf("%s: further hit warnings suppressed", w.field), "hits")
	}
}
