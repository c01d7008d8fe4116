package dice

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kydenul/probability"
)

func TestFaces(t *testing.T) {
	d6, err := Faces(6)
	require.NoError(t, err)
	assert.True(t, d6.Equal(probability.NewSet(1, 2, 3, 4, 5, 6)))

	_, err = Faces(0)
	assert.ErrorIs(t, err, ErrInvalidDiceSpec)
}

func TestPairs(t *testing.T) {
	space, err := Pairs(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 36, space.Len())

	doubles := probability.Select(space, func(p probability.Pair[int, int]) bool {
		return p.First == p.Second
	})
	p, err := probability.Probability(doubles, space)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Cmp(big.NewRat(1, 6)))

	_, err = Pairs(6, -1)
	assert.ErrorIs(t, err, ErrInvalidDiceSpec)
}

func TestSums(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		event probability.Set[int]
		want  *big.Rat
	}{
		{"2d6 seven", []Spec{{Sides: 6, Count: 2}}, probability.NewSet(7), big.NewRat(1, 6)},
		{"2d6 snake eyes", []Spec{{Sides: 6, Count: 2}}, probability.NewSet(2), big.NewRat(1, 36)},
		{"1d20 natural twenty", []Spec{{Sides: 20, Count: 1}}, probability.NewSet(20), big.NewRat(1, 20)},
		{"3d6 ten", []Spec{{Sides: 6, Count: 3}}, probability.NewSet(10), big.NewRat(27, 216)},
		{"1d4 + 1d6 at least nine", []Spec{{Sides: 4, Count: 1}, {Sides: 6, Count: 1}}, probability.NewSet(9, 10), big.NewRat(3, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sums, err := Sums(tt.specs...)
			require.NoError(t, err)

			p, err := probability.Probability(tt.event, sums)
			require.NoError(t, err)
			assert.Equal(t, 0, p.Cmp(tt.want), "got %s want %s", p.RatString(), tt.want.RatString())
		})
	}
}

func TestSums_AgreesWithPairs(t *testing.T) {
	pairs, err := Pairs(6, 6)
	require.NoError(t, err)
	sums, err := Sums(Spec{Sides: 6, Count: 2})
	require.NoError(t, err)

	for total := 2; total <= 12; total++ {
		event := probability.Select(pairs, func(p probability.Pair[int, int]) bool {
			return p.First+p.Second == total
		})
		want, err := probability.Probability(event, pairs)
		require.NoError(t, err)

		got, err := probability.Probability(probability.NewSet(total), sums)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Cmp(want), "total %d", total)
	}
}

func TestSums_LargeButBounded(t *testing.T) {
	sums, err := Sums(Spec{Sides: 1, Count: 1000}, Spec{Sides: 6, Count: 6})
	require.NoError(t, err)

	// 1000 ones plus six sixes
	p, err := probability.Probability(probability.NewSet(1036), sums)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Cmp(big.NewRat(1, 46656)))
}

func TestSums_Errors(t *testing.T) {
	tests := []struct {
		name    string
		specs   []Spec
		wantErr error
	}{
		{"no dice", nil, ErrMissingDice},
		{"invalid sides", []Spec{{Sides: 0, Count: 1}}, ErrInvalidDiceSpec},
		{"invalid count", []Spec{{Sides: 6, Count: 0}}, ErrInvalidDiceSpec},
		{"too many rolls", []Spec{{Sides: 100, Count: 9}}, probability.ErrTooManyOutcomes},
		{"too many one sided dice", []Spec{{Sides: 1, Count: 300_000}}, probability.ErrTooManyOutcomes},
		{"one huge die", []Spec{{Sides: 1_000_000_000, Count: 1}}, probability.ErrTooManyOutcomes},
		{"many dice across specs", []Spec{{Sides: 1, Count: 6000}, {Sides: 1, Count: 6000}}, probability.ErrTooManyOutcomes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sums(tt.specs...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
