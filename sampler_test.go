package probability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Float64() (float64, error) { return 0, errors.New("entropy exhausted") }

func TestSampler(t *testing.T) {
	t.Run("zero_weight_never_drawn", func(t *testing.T) {
		s, err := NewSampler[string](Dist[string]{"a": 1, "never": 0, "b": 3}, NewSeededRandomSource(7))
		require.NoError(t, err)

		for range 2000 {
			o, err := s.Sample()
			require.NoError(t, err)
			assert.NotEqual(t, "never", o)
		}
	})

	t.Run("single_outcome", func(t *testing.T) {
		s, err := NewSampler[int](NewSet(42), NewSeededRandomSource(1))
		require.NoError(t, err)
		o, err := s.Sample()
		require.NoError(t, err)
		assert.Equal(t, 42, o)
	})

	t.Run("default_source", func(t *testing.T) {
		s, err := NewSampler[int](Range(1, 6), nil)
		require.NoError(t, err)
		o, err := s.Sample()
		require.NoError(t, err)
		assert.True(t, Range(1, 6).Contains(o))
	})

	t.Run("source_error", func(t *testing.T) {
		s, err := NewSampler[int](Range(1, 6), failingSource{})
		require.NoError(t, err)
		_, err = s.Sample()
		assert.Error(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewSampler[int](nil, nil)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = NewSampler[int](NewSet[int](), nil)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = NewSampler[string](Dist[string]{"a": 0}, nil)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = NewSampler[string](Dist[string]{"a": -1}, nil)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("agrees_with_exact_die", func(t *testing.T) {
		die := Range(1, 6)
		even := NewSet(2, 4, 6)

		est, err := Simulate(even, die, 200_000, NewSeededRandomSource(2024))
		require.NoError(t, err)
		require.NoError(t, est.Validate())

		exact, err := Probability(even, die)
		require.NoError(t, err)
		assert.Equal(t, 200_000, est.Trials)
		assert.Equal(t, 20, est.Batches)
		assert.Greater(t, est.StdErr, 0.0)
		assert.True(t, est.Within(exact, 6), "estimate %v ± %v vs %s", est.Probability, est.StdErr, exact.RatString())
	})

	t.Run("agrees_with_exact_weighted", func(t *testing.T) {
		d := Dist[string]{"a": 1, "b": 2, "c": 7}
		event := NewSet("c")

		est, err := Simulate(event, d, 50_000, NewSeededRandomSource(99))
		require.NoError(t, err)
		exact, err := Probability(event, d)
		require.NoError(t, err)
		assert.True(t, est.Within(exact, 6))
	})

	t.Run("certain_event", func(t *testing.T) {
		est, err := Simulate(NewSet(1), NewSet(1), 5, NewSeededRandomSource(3))
		require.NoError(t, err)
		assert.Equal(t, 5, est.Hits)
		assert.Equal(t, 1.0, est.Probability)
		assert.Equal(t, 0.0, est.StdDev)
		assert.True(t, est.Within(big1(), 0))
	})

	t.Run("invalid_trials", func(t *testing.T) {
		for _, trials := range []int{0, -5, MaxSimulationTrials + 1} {
			_, err := Simulate(NewSet(1), Range(1, 6), trials, nil)
			assert.ErrorIs(t, err, ErrInvalidArgument, "trials=%d", trials)
		}
	})

	t.Run("empty_space", func(t *testing.T) {
		_, err := Simulate(NewSet(1), NewSet[int](), 10, nil)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestEstimateValidate(t *testing.T) {
	tests := []struct {
		name    string
		est     Estimate
		wantErr bool
	}{
		{"valid", Estimate{Trials: 10, Hits: 3, Batches: 10}, false},
		{"no_trials", Estimate{Trials: 0, Batches: 1}, true},
		{"too_many_hits", Estimate{Trials: 10, Hits: 11, Batches: 1}, true},
		{"no_batches", Estimate{Trials: 10, Hits: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.est.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRandomSources(t *testing.T) {
	t.Run("secure_range_and_refill", func(t *testing.T) {
		src := NewSecureRandomSource(100)
		for range 250 { // 超过缓存大小
			f, err := src.Float64()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 1.0)
		}
	})

	t.Run("seeded_is_reproducible", func(t *testing.T) {
		a, b := NewSeededRandomSource(5), NewSeededRandomSource(5)
		for range 10 {
			x, _ := a.Float64()
			y, _ := b.Float64()
			assert.Equal(t, x, y)
		}
	})

	t.Run("factory", func(t *testing.T) {
		assert.IsType(t, &SecureRandomSource{}, NewRandomSource(0))
		assert.IsType(t, &SeededRandomSource{}, NewRandomSource(12))
	})
}
