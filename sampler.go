package probability

import (
	"math"
	"slices"
	"sort"

	"github.com/montanaflynn/stats"
)

// Sampler draws outcomes from a sample space in proportion to their weight
type Sampler[T comparable] struct {
	outcomes   []T
	cumulative []float64
	src        RandomSource
}

// NewSampler builds the cumulative distribution of space. Zero-weight outcomes
// are never drawn. A nil src selects a SecureRandomSource.
//
// Map iteration order is unspecified, so a seeded source reproduces the same
// frequencies but not necessarily the same sequence of outcomes. Use
// NewOrderedSampler when runs must be reproducible.
func NewSampler[T comparable](space Space[T], src RandomSource) (*Sampler[T], error) {
	return newSampler(space, src, nil)
}

// NewOrderedSampler is like NewSampler but lays outcomes out in cmp order, so
// a seeded source draws the same sequence on every run
func NewOrderedSampler[T comparable](space Space[T], src RandomSource, cmp func(a, b T) int) (*Sampler[T], error) {
	return newSampler(space, src, cmp)
}

type weighted[T comparable] struct {
	outcome T
	weight  float64
}

func newSampler[T comparable](space Space[T], src RandomSource, cmp func(a, b T) int) (*Sampler[T], error) {
	const op = "NewSampler"

	if space == nil {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("nil sample space")
	}
	if src == nil {
		src = NewSecureRandomSource()
	}

	var err error
	entries := make([]weighted[T], 0, space.Len())
	space.each(func(o T, w float64) bool {
		if !validWeight(w) {
			err = ErrInvalidWeight.WithOperation(op).WithDetails("outcome %v has weight %v", o, w)
			return false
		}
		if w > 0 {
			entries = append(entries, weighted[T]{outcome: o, weight: w})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if cmp != nil {
		slices.SortFunc(entries, func(a, b weighted[T]) int { return cmp(a.outcome, b.outcome) })
	}

	s := &Sampler[T]{
		outcomes:   make([]T, len(entries)),
		cumulative: make([]float64, len(entries)),
		src:        src,
	}
	var total float64
	for i, e := range entries {
		total += e.weight
		s.outcomes[i] = e.outcome
		s.cumulative[i] = total
	}
	if total == 0 || math.IsInf(total, 1) {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("sample space total weight is %v", total)
	}

	for i := range s.cumulative {
		s.cumulative[i] /= total
	}
	// Ensure the last cumulative probability is exactly 1.0 to handle floating point precision
	s.cumulative[len(s.cumulative)-1] = 1.0

	return s, nil
}

// Sample draws one outcome
func (s *Sampler[T]) Sample() (T, error) {
	r, err := s.src.Float64()
	if err != nil {
		var zero T
		return zero, err
	}

	// First outcome whose cumulative probability exceeds r
	i := sort.Search(len(s.cumulative), func(i int) bool { return s.cumulative[i] > r })
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	return s.outcomes[i], nil
}

// Simulate estimates P(event) over space by drawing trials outcomes from src.
// The trials are split into batches whose hit ratios give the spread of the
// estimate. It is a stochastic cross-check for Probability, never a substitute.
func Simulate[T comparable](event Set[T], space Space[T], trials int, src RandomSource) (*Estimate, error) {
	return simulate(event, space, trials, src, nil)
}

// SimulateOrdered is like Simulate but samples through NewOrderedSampler,
// so a seeded source gives the same estimate on every run
func SimulateOrdered[T comparable](event Set[T], space Space[T], trials int, src RandomSource, cmp func(a, b T) int) (*Estimate, error) {
	return simulate(event, space, trials, src, cmp)
}

func simulate[T comparable](event Set[T], space Space[T], trials int, src RandomSource, cmp func(a, b T) int) (*Estimate, error) {
	if err := ValidateTrials(trials); err != nil {
		return nil, err
	}

	sampler, err := newSampler(space, src, cmp)
	if err != nil {
		return nil, withOperation(err, "Simulate")
	}

	batchSize := calculateOptimalBatchSize(trials)
	ratios := make([]float64, 0, trials/batchSize+1)
	est := &Estimate{Trials: trials}

	for done := 0; done < trials; {
		n := min(batchSize, trials-done)
		hits := 0
		for range n {
			o, err := sampler.Sample()
			if err != nil {
				return nil, err
			}
			if event.Contains(o) {
				hits++
			}
		}

		est.Hits += hits
		ratios = append(ratios, float64(hits)/float64(n))
		done += n
	}

	est.Batches = len(ratios)
	est.Probability = float64(est.Hits) / float64(trials)
	if len(ratios) >= MinSimulationBatches {
		sd, err := stats.StandardDeviationSample(ratios)
		if err != nil {
			return nil, err
		}
		est.StdDev = sd
		est.StdErr = sd / math.Sqrt(float64(len(ratios)))
	}

	return est, nil
}
