package probability

import (
	"math/big"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// Combinations returns the sample space of all unordered k-element subsets of
// items. Each subset becomes one outcome: its items joined by Separator in
// the order they appear in items, so a subset is never emitted twice.
//
// Items must be distinct and must not contain Separator; k must lie in
// [0, len(items)]. Violations return ErrInvalidArgument. Spaces larger than
// MaxOutcomes return ErrTooManyOutcomes.
func Combinations(items []string, k int) (Set[string], error) {
	return combinations(items, k, MaxOutcomes)
}

func combinations(items []string, k, limit int) (Set[string], error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	return combinationsFunc(items, k, joinLabels, limit)
}

// CombinationsFunc is the generic form of Combinations. key turns one
// combination into its composite outcome; the slice it receives is reused
// between calls and must not be retained.
//
// If two combinations map to the same key the items were not pairwise
// distinguishable and ErrInvalidArgument is returned.
func CombinationsFunc[T any, K comparable](items []T, k int, key func([]T) K) (Set[K], error) {
	return combinationsFunc(items, k, key, MaxOutcomes)
}

func combinationsFunc[T any, K comparable](items []T, k int, key func([]T) K, limit int) (Set[K], error) {
	const op = "Combinations"

	n := len(items)
	if k < 0 || k > n {
		return nil, invalidArgument(op, "need 0 <= k <= %d, got k=%d", n, k)
	}
	if key == nil {
		return nil, invalidArgument(op, "nil key function")
	}

	count := new(big.Int).Binomial(int64(n), int64(k))
	if !count.IsInt64() || count.Int64() > int64(limit) {
		return nil, ErrTooManyOutcomes.WithOperation(op).
			WithDetails("C(%d, %d) = %s exceeds limit %d", n, k, count, limit)
	}
	size := int(count.Int64())

	out := make(Set[K], size)
	gen := combin.NewCombinationGenerator(n, k)
	idx := make([]int, k)
	buf := make([]T, k)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			buf[i] = items[j]
		}
		out[key(buf)] = struct{}{}
	}

	if len(out) != size {
		return nil, invalidArgument(op, "items are not pairwise distinguishable: %d distinct outcomes, want %d", len(out), size)
	}
	return out, nil
}

// Labels splits a combination outcome back into its item labels
func Labels(outcome string) []string {
	if outcome == "" {
		return nil
	}
	return strings.Split(outcome, Separator)
}

func joinLabels(items []string) string { return strings.Join(items, Separator) }
