// Package scenario loads probability questions from YAML files and
// evaluates them through a probability.Engine.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kydenul/probability"
	"github.com/kydenul/probability/urn"
)

// Scenario describes one question. Exactly one of Items, Groups, Outcomes
// or Weights defines the sample space.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Sample space
	Items    []string           `yaml:"items,omitempty"`    // every Draw-subset of items
	Groups   []urn.Group        `yaml:"groups,omitempty"`   // every Draw-subset of an urn
	Outcomes []string           `yaml:"outcomes,omitempty"` // uniform outcomes
	Weights  map[string]float64 `yaml:"weights,omitempty"`  // outcome frequencies
	Draw     *int               `yaml:"draw,omitempty"`     // required with items or groups; 0 draws the empty subset

	// Event, the intersection of every clause given
	Event   []string    `yaml:"event,omitempty"`
	Exactly []urn.Group `yaml:"exactly,omitempty"`
	Given   []string    `yaml:"given,omitempty"`

	// Expect is an optional exact answer such as "84/100947"
	Expect string `yaml:"expect,omitempty"`
}

// Result is the evaluated answer to a scenario
type Result struct {
	Name        string   `json:"name"`
	Outcomes    int      `json:"outcomes"`
	EventSize   int      `json:"event_size"` // event outcomes that are in the space
	Probability *big.Rat `json:"-"`
	Exact       string   `json:"exact"`
	Float       float64  `json:"float"`
	Expected    string   `json:"expected,omitempty"`
	Matches     *bool    `json:"matches,omitempty"`
}

// Load reads every scenario of a YAML file. Documents are separated by "---".
func Load(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Parse decodes one or more YAML documents. Unknown keys are rejected.
func Parse(data []byte) ([]*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var out []*Scenario
	for {
		var s Scenario
		err := decoder.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing scenario: %w", err)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no scenario found")
	}
	return out, nil
}

// Validate checks that the scenario defines one space and at least one event clause
func (s *Scenario) Validate() error {
	spaces := 0
	for _, set := range []bool{len(s.Items) > 0, len(s.Groups) > 0, len(s.Outcomes) > 0, len(s.Weights) > 0} {
		if set {
			spaces++
		}
	}
	if spaces != 1 {
		return fmt.Errorf("scenario %q: exactly one of items, groups, outcomes or weights is required, got %d", s.Name, spaces)
	}
	if len(s.Event) == 0 && len(s.Exactly) == 0 {
		return fmt.Errorf("scenario %q: event or exactly is required", s.Name)
	}
	if len(s.Exactly) > 0 && !s.drawn() {
		return fmt.Errorf("scenario %q: exactly needs items or groups", s.Name)
	}
	if s.drawn() {
		if s.Draw == nil {
			return fmt.Errorf("scenario %q: draw is required with items or groups", s.Name)
		}
		if *s.Draw < 0 {
			return fmt.Errorf("scenario %q: draw cannot be negative, got %d", s.Name, *s.Draw)
		}
	}
	if s.Expect != "" {
		if _, ok := new(big.Rat).SetString(s.Expect); !ok {
			return fmt.Errorf("scenario %q: expect %q is not a rational", s.Name, s.Expect)
		}
	}
	return nil
}

// drawn reports whether the space is built from draws
func (s *Scenario) drawn() bool { return len(s.Items) > 0 || len(s.Groups) > 0 }

// Space builds the sample space of the scenario
func (s *Scenario) Space(engine *probability.Engine) (probability.Space[string], error) {
	switch {
	case len(s.Items) > 0:
		return engine.Combinations(s.Items, *s.Draw)
	case len(s.Groups) > 0:
		u, err := urn.New(s.Groups...)
		if err != nil {
			return nil, err
		}
		return engine.Combinations(u.Balls(), *s.Draw)
	case len(s.Outcomes) > 0:
		return probability.NewSet(s.Outcomes...), nil
	default:
		d := probability.Dist[string](s.Weights)
		if err := d.Validate(); err != nil {
			return nil, err
		}
		return d, nil
	}
}

// EventSet selects the scenario event from space
func (s *Scenario) EventSet(engine *probability.Engine, space probability.Space[string]) probability.Set[string] {
	var clauses []probability.Set[string]
	if len(s.Event) > 0 {
		clauses = append(clauses, s.outcomes(s.Event))
	}
	for _, g := range s.Exactly {
		clauses = append(clauses, engine.Select(space, urn.Exactly(g.Color, g.Count)))
	}
	return probability.Intersect(clauses...)
}

// outcomes canonicalises listed outcomes. Draw outcomes are written as
// space separated items, which are reordered to match the generated labels.
func (s *Scenario) outcomes(listed []string) probability.Set[string] {
	if !s.drawn() {
		return probability.NewSet(listed...)
	}

	order := s.itemOrder()
	out := make(probability.Set[string], len(listed))
	for _, o := range listed {
		labels := strings.Fields(o)
		sortByOrder(labels, order)
		out.Add(strings.Join(labels, probability.Separator))
	}
	return out
}

// itemOrder maps every item label to its position in the generated space
func (s *Scenario) itemOrder() map[string]int {
	items := s.Items
	if len(s.Groups) > 0 {
		items = urn.Urn(s.Groups).Balls()
	}
	order := make(map[string]int, len(items))
	for i, item := range items {
		order[item] = i
	}
	return order
}

// Run evaluates the scenario exactly
func (s *Scenario) Run(engine *probability.Engine) (*Result, error) {
	space, err := s.Space(engine)
	if err != nil {
		return nil, err
	}
	event := s.EventSet(engine, space)

	var p *big.Rat
	if len(s.Given) > 0 {
		p, err = engine.Conditional(event, s.outcomes(s.Given), space)
	} else {
		p, err = engine.Probability(event, space)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:        s.Name,
		Outcomes:    space.Len(),
		EventSize:   probability.Select(space, event.Contains).Len(),
		Probability: p,
		Exact:       p.RatString(),
		Float:       probability.Float(p),
	}
	if s.Expect != "" {
		want, _ := new(big.Rat).SetString(s.Expect)
		matches := want.Cmp(p) == 0
		res.Expected = want.RatString()
		res.Matches = &matches
	}
	return res, nil
}

// Simulate estimates the scenario probability by sampling. Conditioning is
// not simulated; Given is ignored.
func (s *Scenario) Simulate(engine *probability.Engine, trials int) (*probability.Estimate, error) {
	space, err := s.Space(engine)
	if err != nil {
		return nil, err
	}
	return engine.Simulate(s.EventSet(engine, space), space, trials)
}
