// Package probability evaluates exact probabilities over finite sample spaces.
//
// A sample space is either a uniform Set of distinct outcomes or a weighted
// Dist mapping outcomes to relative frequencies. An event is a Set. The
// probability of an event is the weight of the outcomes it shares with the
// space divided by the total weight of the space, returned as a reduced
// *big.Rat so small discrete problems stay exact:
//
//	die := probability.Range(1, 6)
//	even := probability.NewSet(2, 4, 6)
//	p, _ := probability.Probability(even, die) // 1/2
//
// Spaces are built with Combinations / CombinationsFunc, events are carved
// out of them with Select and the set algebra helpers, and Choose gives the
// closed-form counts used to cross-check enumerated results.
//
// All package-level functions are pure and safe for concurrent use.
package probability

import (
	"math/big"
)

// Predicate selects outcomes of a sample space
type Predicate[T any] func(T) bool

// Probability returns P(event) over space as an exact ratio.
//
// Outcomes of event that are not in space contribute nothing. An empty space,
// or a weighted space whose total weight is zero, yields ErrDivisionByZero.
func Probability[T comparable](event Set[T], space Space[T]) (*big.Rat, error) {
	const op = "Probability"

	if space == nil {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("nil sample space")
	}

	favorable, total, err := space.measure(event)
	if err != nil {
		return nil, withOperation(err, op)
	}
	if total.Sign() == 0 {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("sample space of %d outcomes has zero total weight", space.Len())
	}

	return favorable.Quo(favorable, total), nil
}

// Conditional returns P(event | given) = P(event ∩ given) / P(given) over space.
// ErrDivisionByZero is returned when given has zero probability.
func Conditional[T comparable](event, given Set[T], space Space[T]) (*big.Rat, error) {
	const op = "Conditional"

	if space == nil {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("nil sample space")
	}

	joint, _, err := space.measure(Intersect(event, given))
	if err != nil {
		return nil, withOperation(err, op)
	}
	condition, _, err := space.measure(given)
	if err != nil {
		return nil, withOperation(err, op)
	}
	if condition.Sign() == 0 {
		return nil, ErrDivisionByZero.WithOperation(op).WithDetails("conditioning event has zero weight")
	}

	return joint.Quo(joint, condition), nil
}

// Select returns the outcomes of space for which pred holds. Outcomes of a
// weighted space are candidates regardless of their weight. A nil predicate
// selects nothing.
func Select[T comparable](space Space[T], pred Predicate[T]) Set[T] {
	out := make(Set[T])
	if space == nil || pred == nil {
		return out
	}

	space.each(func(o T, _ float64) bool {
		if pred(o) {
			out[o] = struct{}{}
		}
		return true
	})
	return out
}

// Float returns the nearest float64 to r, for display only
func Float(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func withOperation(err error, op string) error {
	if pe, ok := err.(*ProbabilityError); ok && pe.Operation == "" {
		return pe.WithOperation(op)
	}
	return err
}
