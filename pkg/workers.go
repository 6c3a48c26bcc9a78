package validation

import (
	"errors"
	"fmt"
)

type workerResult struct {
	acc *accumulator
	err error
}

// sink hands events to a single accumulator, or to a pool of workers with
// one accumulator each when more than one worker is configured. Events
// are always read in order; only the filling runs in parallel.
type sink struct {
	acc     *accumulator
	jobs    chan eventHits
	results chan workerResult
	workers int
}

func newSink(spec FieldSpec, warn *warner, numWorkers int) *sink {
	s := &sink{acc: newAccumulator(spec, warn), workers: numWorkers}
	if numWorkers <= 1 {
		return s
	}
	s.jobs = make(chan eventHits, 100)
	s.results = make(chan workerResult, numWorkers)
	for w := 1; w <= numWorkers; w++ {
		go worker(w, newAccumulator(spec, warn), s.jobs, s.results)
	}
	return s
}

func (s *sink) send(evt eventHits) {
	if s.jobs == nil {
		s.acc.add(evt)
		return
	}
	// the source reuses its buffers between events
	s.jobs <- eventHits{
		Event:   evt.Event,
		Calo:    append([]string(nil), evt.Calo...),
		Tracker: append([]int(nil), evt.Tracker...),
		Weights: append([]float64(nil), evt.Weights...),
	}
}

// close waits for the workers and merges their grids.
func (s *sink) close() (*accumulator, error) {
	if s.jobs == nil {
		return s.acc, nil
	}
	close(s.jobs)

	var errs []error
	for w := 0; w < s.workers; w++ {
		res := <-s.results
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		if err := s.acc.merge(res.acc); err != nil {
			errs = append(errs, err)
		}
	}
	return s.acc, errors.Join(errs...)
}

func worker(id int, acc *accumulator, jobs <-chan eventHits, results chan<- workerResult) {
	defer func() {
		if r := recover(); r != nil {
			results <- workerResult{err: fmt.Errorf("worker %d recovered from panic: %v", id, r)}
			for range jobs {
			}
		}
	}()

	for evt := range jobs {
		acc.add(evt)
	}
	results <- workerResult{acc: acc}
}
