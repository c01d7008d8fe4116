// Package urn models drawing balls without replacement from an urn of
// coloured balls.
package urn

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/kydenul/probability"
)

// Group is Count balls of one colour
type Group struct {
	Color string `yaml:"color" json:"color"`
	Count int    `yaml:"count" json:"count"`
}

// Urn is a collection of coloured balls. Balls of one colour are labelled
// apart ("B1", "B2", ...) so every draw is an equally likely outcome.
type Urn []Group

// New builds an urn from groups
func New(groups ...Group) (Urn, error) {
	u := Urn(groups)
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks that colours are distinct, non-empty, free of digits and
// spaces, and that counts are non-negative
func (u Urn) Validate() error {
	seen := make(map[string]struct{}, len(u))
	for _, g := range u {
		if g.Color == "" || strings.ContainsAny(g.Color, "0123456789"+probability.Separator) {
			return invalid("color %q must be non-empty without digits or spaces", g.Color)
		}
		if _, dup := seen[g.Color]; dup {
			return invalid("duplicate color %q", g.Color)
		}
		if g.Count < 0 {
			return invalid("color %q has negative count %d", g.Color, g.Count)
		}
		seen[g.Color] = struct{}{}
	}
	return nil
}

// Size returns the number of balls in the urn
func (u Urn) Size() int {
	n := 0
	for _, g := range u {
		n += g.Count
	}
	return n
}

// Balls returns one label per ball, colour followed by its number
func (u Urn) Balls() []string {
	balls := make([]string, 0, u.Size())
	for _, g := range u {
		for i := 1; i <= g.Count; i++ {
			balls = append(balls, g.Color+strconv.Itoa(i))
		}
	}
	return balls
}

// Draws returns the uniform space of every k-ball draw
func (u Urn) Draws(k int) (probability.Set[string], error) {
	return probability.Combinations(u.Balls(), k)
}

// Color returns the colour of a ball label
func Color(ball string) string {
	return strings.TrimRight(ball, "0123456789")
}

// Exactly returns a predicate matching draws holding exactly n balls of color
func Exactly(color string, n int) probability.Predicate[string] {
	return func(draw string) bool {
		got := 0
		for _, ball := range probability.Labels(draw) {
			if Color(ball) == color {
				got++
			}
		}
		return got == n
	}
}

// Count returns the number of k-ball draws holding exactly want[c] balls of
// every colour c in want, the hypergeometric numerator
// ∏ C(count_c, want_c) · C(rest, k - Σ want_c) where rest counts the balls
// of the unconstrained colours. It is zero when no draw qualifies.
func (u Urn) Count(k int, want map[string]int) (*big.Int, error) {
	if k < 0 || k > u.Size() {
		return nil, invalid("need 0 <= k <= %d, got k=%d", u.Size(), k)
	}

	counts := make(map[string]int, len(u))
	for _, g := range u {
		counts[g.Color] = g.Count
	}

	total := big.NewInt(1)
	rest, remaining := u.Size(), k
	for color, n := range want {
		if n < 0 {
			return nil, invalid("color %q wants negative count %d", color, n)
		}
		have := counts[color]
		if n > have {
			return big.NewInt(0), nil
		}
		total.Mul(total, probability.MustChoose(int64(have), int64(n)))
		rest -= have
		remaining -= n
	}
	if remaining < 0 || remaining > rest {
		return big.NewInt(0), nil
	}

	return total.Mul(total, probability.MustChoose(int64(rest), int64(remaining))), nil
}

// Probability is Count(k, want) / C(Size, k)
func (u Urn) Probability(k int, want map[string]int) (*big.Rat, error) {
	count, err := u.Count(k, want)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetFrac(count, probability.MustChoose(int64(u.Size()), int64(k))), nil
}

func invalid(format string, args ...any) error {
	return probability.ErrInvalidArgument.WithOperation("Urn").WithDetails(format, args...)
}
