// Package dice builds sample spaces for fair polyhedral dice.
package dice

import (
	"errors"
	"math/big"

	"github.com/kydenul/probability"
)

var (
	// ErrMissingDice indicates a request without any dice.
	ErrMissingDice = errors.New("at least one die spec is required")
	// ErrInvalidDiceSpec indicates a spec with non-positive sides or count.
	ErrInvalidDiceSpec = errors.New("dice spec must have positive sides and count")
)

const (
	// maxWays keeps every frequency of Sums an exact float64.
	maxWays = 1 << 53
	// maxWork caps the cell updates of the convolution in Sums.
	maxWork = probability.MaxOutcomes
)

// Spec describes Count dice with Sides faces each, as in "2d6".
type Spec struct {
	Sides int `yaml:"sides" json:"sides"`
	Count int `yaml:"count" json:"count"`
}

// Faces returns the uniform space {1, ..., sides} of a single die.
func Faces(sides int) (probability.Set[int], error) {
	if sides <= 0 {
		return nil, ErrInvalidDiceSpec
	}
	return probability.Range(1, sides), nil
}

// Pairs returns the space of ordered rolls of two distinguishable dice.
func Pairs(sidesA, sidesB int) (probability.Set[probability.Pair[int, int]], error) {
	a, err := Faces(sidesA)
	if err != nil {
		return nil, err
	}
	b, err := Faces(sidesB)
	if err != nil {
		return nil, err
	}
	return probability.Cross(a, b), nil
}

// Sums returns the weighted space of totals when every die of specs is
// rolled once. The weight of a total is the number of rolls producing it.
//
// # Errors
//
//   - At least one Spec must be provided, otherwise ErrMissingDice is returned.
//   - Each Spec must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec is returned.
//   - More than 2^53 distinct rolls, or dice needing more than
//     probability.MaxOutcomes convolution steps, return
//     probability.ErrTooManyOutcomes.
//
// Example:
//
//	sums, err := Sums(Spec{Sides: 6, Count: 2}) // 2d6
//	p, err := probability.Probability(probability.NewSet(7), sums) // 1/6
func Sums(specs ...Spec) (probability.Dist[int], error) {
	if len(specs) == 0 {
		return nil, ErrMissingDice
	}

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return nil, ErrInvalidDiceSpec
		}
	}
	if err := checkWork(specs); err != nil {
		return nil, err
	}

	ways := big.NewInt(1)
	for _, spec := range specs {
		ways.Mul(ways, new(big.Int).Exp(big.NewInt(int64(spec.Sides)), big.NewInt(int64(spec.Count)), nil))
		if ways.Cmp(big.NewInt(maxWays)) > 0 {
			return nil, probability.ErrTooManyOutcomes.WithOperation("Sums").
				WithDetails("more than %d distinct rolls", int64(maxWays))
		}
	}

	// counts[s] is the number of rolls so far whose total is s
	counts := []float64{1}
	for _, spec := range specs {
		for range spec.Count {
			counts = addDie(counts, spec.Sides)
		}
	}

	dist := make(probability.Dist[int])
	for total, n := range counts {
		if n > 0 {
			dist[total] = n
		}
	}
	return dist, nil
}

// checkWork bounds the work of the convolution: adding a die of s sides to
// a table of n totals costs n·s steps. Every die costs at least as much as
// the one before, so the loop stops after about ten thousand dice at most.
func checkWork(specs []Spec) error {
	work, length := 0, 1
	for _, spec := range specs {
		for range spec.Count {
			if spec.Sides > maxWork || length > maxWork/spec.Sides {
				return tooMuchWork()
			}
			work += length * spec.Sides
			length += spec.Sides
			if work > maxWork {
				return tooMuchWork()
			}
		}
	}
	return nil
}

func tooMuchWork() error {
	return probability.ErrTooManyOutcomes.WithOperation("Sums").
		WithDetails("more than %d convolution steps", maxWork)
}

// addDie convolves counts with one die of the given sides
func addDie(counts []float64, sides int) []float64 {
	next := make([]float64, len(counts)+sides)
	for total, n := range counts {
		if n == 0 {
			continue
		}
		for face := 1; face <= sides; face++ {
			next[total+face] += n
		}
	}
	return next
}
