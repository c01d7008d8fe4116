package scenario

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kydenul/probability"
	"github.com/kydenul/probability/urn"
)

func ptr[T any](v T) *T { return &v }

func newTestEngine() *probability.Engine {
	return probability.NewEngineWithLogger(probability.NewSilentLogger())
}

func TestLoad(t *testing.T) {
	scenarios, err := Load(filepath.Join("testdata", "urn.yaml"))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	engine := newTestEngine()
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			res, err := s.Run(engine)
			require.NoError(t, err)
			assert.Equal(t, 100947, res.Outcomes)
			require.NotNil(t, res.Matches)
			assert.True(t, *res.Matches, "got %s want %s", res.Exact, res.Expected)
		})
	}

	assert.Equal(t, int64(2), engine.GetMetrics().Enumerations)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"unknown_key", "name: x\noutcomes: [a]\nevent: [a]\ncolour: red\n"},
		{"no_space", "name: x\nevent: [a]\n"},
		{"two_spaces", "name: x\noutcomes: [a]\nitems: [a, b]\ndraw: 1\nevent: [a]\n"},
		{"no_event", "name: x\noutcomes: [a]\n"},
		{"exactly_without_draws", "name: x\noutcomes: [a]\nexactly: [{color: R, count: 1}]\n"},
		{"missing_draw", "name: x\nitems: [a, b]\nevent: [a]\n"},
		{"negative_draw", "name: x\nitems: [a, b]\ndraw: -1\nevent: [a]\n"},
		{"bad_expect", "name: x\noutcomes: [a]\nevent: [a]\nexpect: half\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want *big.Rat
	}{
		{
			name: "uniform",
			yaml: "name: even die\noutcomes: ['1', '2', '3', '4', '5', '6']\nevent: ['2', '4', '6']\n",
			want: big.NewRat(1, 2),
		},
		{
			name: "weighted",
			yaml: "name: loaded coin\nweights: {heads: 3, tails: 1}\nevent: [heads]\n",
			want: big.NewRat(3, 4),
		},
		{
			name: "draws_in_any_order",
			yaml: "name: pair\nitems: [a, b, c, d]\ndraw: 2\nevent: ['c a', 'b d']\n",
			want: big.NewRat(2, 6),
		},
		{
			name: "conditional",
			yaml: "name: six given even\noutcomes: ['1', '2', '3', '4', '5', '6']\nevent: ['6']\ngiven: ['2', '4', '6']\n",
			want: big.NewRat(1, 3),
		},
		{
			name: "event_and_exactly",
			yaml: "name: blue pair\ngroups: [{color: B, count: 2}, {color: R, count: 2}]\ndraw: 2\nevent: ['B2 B1', 'R1 R2']\nexactly: [{color: B, count: 2}]\n",
			want: big.NewRat(1, 6),
		},
	}

	engine := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			require.Len(t, scenarios, 1)

			res, err := scenarios[0].Run(engine)
			require.NoError(t, err)
			assert.Equal(t, 0, res.Probability.Cmp(tt.want), "got %s", res.Exact)
			assert.Nil(t, res.Matches)
		})
	}
}

func TestRun_EmptyDraw(t *testing.T) {
	scenarios, err := Parse([]byte("name: nothing drawn\nitems: [a, b, c]\ndraw: 0\nevent: ['']\n"))
	require.NoError(t, err)

	res, err := scenarios[0].Run(newTestEngine())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Outcomes)
	assert.Equal(t, 1, res.EventSize)
	assert.Equal(t, "1", res.Exact)
}

func TestRun_EventSizeCountsSpaceOutcomes(t *testing.T) {
	s := &Scenario{Name: "partial", Outcomes: []string{"a", "b", "c"}, Event: []string{"a", "z", "y"}}

	res, err := s.Run(newTestEngine())
	require.NoError(t, err)
	assert.Equal(t, 1, res.EventSize)
	assert.Equal(t, "1/3", res.Exact)
}

func TestRun_Errors(t *testing.T) {
	engine := newTestEngine()

	t.Run("invalid_weight", func(t *testing.T) {
		s := &Scenario{Name: "bad", Weights: map[string]float64{"a": -1}, Event: []string{"a"}}
		_, err := s.Run(engine)
		assert.ErrorIs(t, err, probability.ErrInvalidWeight)
	})

	t.Run("impossible_condition", func(t *testing.T) {
		s := &Scenario{Name: "bad", Outcomes: []string{"a", "b"}, Event: []string{"a"}, Given: []string{"z"}}
		_, err := s.Run(engine)
		assert.ErrorIs(t, err, probability.ErrDivisionByZero)
	})

	t.Run("invalid_urn", func(t *testing.T) {
		s := &Scenario{Name: "bad", Groups: []urn.Group{{Color: "B1", Count: 2}}, Draw: ptr(1), Event: []string{"B11"}}
		_, err := s.Run(engine)
		assert.ErrorIs(t, err, probability.ErrInvalidArgument)
	})
}

func TestSimulate(t *testing.T) {
	engine := newTestEngine()
	cfg := *engine.GetConfig()
	sim := *cfg.Simulation
	sim.Seed = 7
	cfg.Simulation = &sim
	require.NoError(t, engine.UpdateConfig(&cfg))

	scenarios, err := Parse([]byte("name: loaded coin\nweights: {heads: 3, tails: 1}\nevent: [heads]\n"))
	require.NoError(t, err)

	est, err := scenarios[0].Simulate(engine, 50_000)
	require.NoError(t, err)
	assert.Equal(t, 50_000, est.Trials)
	assert.True(t, est.Within(big.NewRat(3, 4), 6), "estimate %v", est.Probability)
}
