package probability

import (
	"math"
	"math/big"
)

// Space is a finite sample space: either a uniform Set or a weighted Dist.
// The interface is sealed; only types of this package implement it.
type Space[T comparable] interface {
	// Len returns the number of outcomes listed in the space
	Len() int

	// measure returns the weight of event ∩ space and the total weight of the space
	measure(event Set[T]) (favorable, total *big.Rat, err error)

	// each calls fn for every outcome and its weight until fn returns false
	each(fn func(o T, weight float64) bool)
}

func (s Set[T]) measure(event Set[T]) (*big.Rat, *big.Rat, error) {
	small, large := event, s
	if len(s) < len(event) {
		small, large = s, event
	}

	var hits int64
	for o := range small {
		if large.Contains(o) {
			hits++
		}
	}
	return new(big.Rat).SetInt64(hits), new(big.Rat).SetInt64(int64(len(s))), nil
}

func (s Set[T]) each(fn func(o T, weight float64) bool) {
	for o := range s {
		if !fn(o, 1) {
			return
		}
	}
}

// Dist is a weighted sample space mapping each outcome to a non-negative
// frequency. Frequencies are relative: they need not sum to 1. Zero-weight
// outcomes are part of the space but never contribute to a probability.
type Dist[T comparable] map[T]float64

// Len returns the number of outcomes listed in the distribution
func (d Dist[T]) Len() int { return len(d) }

// Support returns the outcomes with a positive weight
func (d Dist[T]) Support() Set[T] {
	out := make(Set[T], len(d))
	for o, w := range d {
		if w > 0 {
			out[o] = struct{}{}
		}
	}
	return out
}

// Validate reports the first weight that is negative, NaN or infinite
func (d Dist[T]) Validate() error {
	for o, w := range d {
		if !validWeight(w) {
			return ErrInvalidWeight.WithDetails("outcome %v has weight %v", o, w)
		}
	}
	return nil
}

// Weights of outcomes missing from d count as zero: an event is a predicate
// over a wider universe and only its overlap with the space matters.
func (d Dist[T]) measure(event Set[T]) (*big.Rat, *big.Rat, error) {
	favorable, total := new(big.Rat), new(big.Rat)
	w := new(big.Rat)
	for o, weight := range d {
		if !validWeight(weight) {
			return nil, nil, ErrInvalidWeight.WithDetails("outcome %v has weight %v", o, weight)
		}
		if weight == 0 {
			continue
		}

		w.SetFloat64(weight)
		total.Add(total, w)
		if event.Contains(o) {
			favorable.Add(favorable, w)
		}
	}
	return favorable, total, nil
}

func (d Dist[T]) each(fn func(o T, weight float64) bool) {
	for o, w := range d {
		if !fn(o, w) {
			return
		}
	}
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}

// Uniform converts a set into an equally weighted distribution
func Uniform[T comparable](s Set[T]) Dist[T] {
	d := make(Dist[T], len(s))
	for o := range s {
		d[o] = 1
	}
	return d
}
