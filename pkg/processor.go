package validation

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// Store persists the result of one field.
type Store interface {
	WriteField(res *FieldResult) error
	Close() error
}

// Plotter draws the result of one field.
type Plotter interface {
	Plot(res *FieldResult) error
}

// Context carries everything a run needs. Stores and Plotter may be empty.
type Context struct {
	Config  Configuration
	Logger  Logger
	Display DisplayConfig
	Source  EventSource
	Stores  []Store
	Plotter Plotter
}

// FieldResult is the output of one field. Calorimeter fields fill Counts
// (and Means in average mode), tracker fields fill TrackerCounts (and
// TrackerMeans), histogram fields fill Histogram.
type FieldResult struct {
	Spec          FieldSpec
	Title         string
	Counts        CaloMaps
	Means         CaloMaps
	TrackerCounts *Map
	TrackerMeans  *Map
	Histogram     *hbook.H1D
	Stats         HitStats
}

// Calo returns the calorimeter maps to draw: means in average mode.
func (r *FieldResult) Calo() CaloMaps {
	if r.Means != nil {
		return r.Means
	}
	return r.Counts
}

// Tracker returns the tracker map to draw: means in average mode.
func (r *FieldResult) Tracker() *Map {
	if r.TrackerMeans != nil {
		return r.TrackerMeans
	}
	return r.TrackerCounts
}

// Summary counts the fields of a run.
type Summary struct {
	Processed int
	Failed    int
	Ignored   int
}

type Processor struct {
	ctx Context
}

func NewProcessor(ctx Context) *Processor {
	if ctx.Logger == nil {
		ctx.Logger = NopLogger{}
	}
	if ctx.Display == nil {
		ctx.Display = DisplayConfig{}
	}
	if ctx.Config.NumWorkers < 1 {
		ctx.Config.NumWorkers = 1
	}
	// no limit
	if ctx.Config.MaxEvents <= 0 {
		ctx.Config.MaxEvents = -1
	}
	return &Processor{ctx: ctx}
}

// Run processes every field of the source. A field that fails is logged
// and the run goes on with the next one.
func (p *Processor) Run() Summary {
	var summary Summary
	logger := p.ctx.Logger
	for _, name := range p.ctx.Source.Fields() {
		spec, err := ClassifyField(name)
		if spec.Kind == UnknownKind {
			summary.Ignored++
			if p.ctx.Config.Verbosity > 1 {
				logger.Info(fmt.Sprintf("Ignoring field %s", name), "processor")
			}
			continue
		}
		if err != nil {
			summary.Failed++
			logger.Error(fmt.Errorf("error classifying field: %w", err).Error())
			continue
		}

		res, err := p.ProcessField(spec)
		if err != nil {
			summary.Failed++
			logger.Error(fmt.Errorf("error processing field %s: %w", name, err).Error())
			continue
		}
		if err := p.emit(res); err != nil {
			summary.Failed++
			logger.Error(fmt.Errorf("error writing field %s: %w", name, err).Error())
			continue
		}
		summary.Processed++
	}
	return summary
}

func (p *Processor) emit(res *FieldResult) error {
	for _, store := range p.ctx.Stores {
		if err := store.WriteField(res); err != nil {
			return err
		}
	}
	if p.ctx.Plotter != nil {
		return p.ctx.Plotter.Plot(res)
	}
	return nil
}

// ProcessField builds the maps or the histogram of one field.
func (p *Processor) ProcessField(spec FieldSpec) (*FieldResult, error) {
	if p.ctx.Config.Verbosity > 0 {
		message := fmt.Sprintf("Processing %s %s", spec.Kind, spec.Name)
		p.ctx.Logger.Info(message, "processor")
	}

	res := &FieldResult{Spec: spec, Title: p.ctx.Display.Title(spec)}
	switch spec.Kind {
	case PlainHistogram:
		h, err := p.buildHistogram(spec, res.Title)
		if err != nil {
			return nil, err
		}
		res.Histogram = h
		return res, nil
	case CalorimeterMap, TrackerMap:
		acc, err := p.accumulate(spec)
		if err != nil {
			return nil, err
		}
		res.Stats = acc.stats
		if acc.calo != nil {
			res.Counts = acc.calo.Finalize(CountMode)
			if spec.Average() {
				res.Means = acc.calo.Finalize(AverageMode)
			}
		} else {
			res.TrackerCounts = acc.tracker.Finalize(CountMode)
			if spec.Average() {
				res.TrackerMeans = acc.tracker.Finalize(AverageMode)
			}
		}
		if res.Stats.Skipped > 0 {
			message := fmt.Sprintf("%s: skipped %d of %d hits", spec.Name, res.Stats.Skipped, res.Stats.Hits)
			p.ctx.Logger.Warn(message, "processor")
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, spec.Name)
	}
}

// accumulate reads the hit list (and weights) of every event and fills
// the grids of the field.
func (p *Processor) accumulate(spec FieldSpec) (*accumulator, error) {
	src := p.ctx.Source
	hitVar, err := src.NewVar(spec.HitField)
	if err != nil {
		return nil, err
	}
	vars := []FieldVar{hitVar}
	var weightVar FieldVar
	if spec.Average() {
		weightVar, err = src.NewVar(spec.WeightField)
		if err != nil {
			return nil, err
		}
		vars = append(vars, weightVar)
	}

	warn := newWarner(p.ctx.Logger, spec.Name, p.ctx.Config.Verbosity)
	sink := newSink(spec, warn, p.ctx.Config.NumWorkers)

	var trackerBuf []int
	var weightBuf []float64
	err = src.Scan(vars, int64(p.ctx.Config.MaxEvents), func(ievt int64) error {
		evt := eventHits{Event: ievt}
		nHits := 0
		switch spec.Kind {
		case CalorimeterMap:
			hits, err := Strings(hitVar.Value)
			if err != nil {
				return fmt.Errorf("field %q: %w", spec.HitField, err)
			}
			evt.Calo = hits
			nHits = len(hits)
		case TrackerMap:
			trackerBuf, err = AppendInts(trackerBuf[:0], hitVar.Value)
			if err != nil {
				return fmt.Errorf("field %q: %w", spec.HitField, err)
			}
			evt.Tracker = trackerBuf
			nHits = len(trackerBuf)
		}
		if spec.Average() {
			weightBuf, _, err = AppendFloat64s(weightBuf[:0], weightVar.Value)
			if err != nil {
				return fmt.Errorf("field %q: %w", spec.WeightField, err)
			}
			if len(weightBuf) != nHits {
				return &ErrLengthMismatch{Field: spec.Name, Event: ievt, Hits: nHits, Weights: len(weightBuf)}
			}
			evt.Weights = weightBuf
		}
		sink.send(evt)
		return nil
	})

	acc, mergeErr := sink.close()
	if err != nil {
		return nil, err
	}
	if mergeErr != nil {
		return nil, mergeErr
	}
	return acc, nil
}
