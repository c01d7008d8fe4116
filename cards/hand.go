package cards

import (
	"math/big"
	"math/bits"
	"strings"

	"github.com/kydenul/probability"
)

// Hand is an unordered set of distinct cards packed into a bitmask, bit i
// standing for Deck()[i]. Equal hands compare equal with ==, which makes
// Hand usable directly as an outcome.
type Hand uint64

// NewHand builds a hand from cards. Repeated cards collapse.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		i := c.Index()
		if i < 0 {
			return 0, invalidCard("NewHand", "invalid card %+v", c)
		}
		h |= 1 << uint(i)
	}
	return h, nil
}

// ParseHand parses space-separated cards into a hand
func ParseHand(s string) (Hand, error) {
	cs, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return NewHand(cs...)
}

// handOf packs cards already known to be valid
func handOf(cards []Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= 1 << uint(c.Index())
	}
	return h
}

// Len returns the number of cards in the hand
func (h Hand) Len() int { return bits.OnesCount64(uint64(h)) }

// Contains reports whether c is in the hand
func (h Hand) Contains(c Card) bool {
	i := c.Index()
	return i >= 0 && h&(1<<uint(i)) != 0
}

// Cards returns the cards of the hand in deck order
func (h Hand) Cards() []Card {
	deck := Deck()
	out := make([]Card, 0, h.Len())
	for v := uint64(h); v != 0; v &= v - 1 {
		out = append(out, deck[bits.TrailingZeros64(v)])
	}
	return out
}

func (h Hand) String() string {
	cs := h.Cards()
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// suitMask selects the 13 bits of one suit
const suitMask = 1<<Ranks - 1

// IsFlush reports whether every card of a non-empty hand shares one suit
func (h Hand) IsFlush() bool {
	if h == 0 {
		return false
	}
	for s := 0; s < len(Suits); s++ {
		if uint64(h)&^(suitMask<<(s*Ranks)) == 0 {
			return true
		}
	}
	return false
}

// Hands returns the space of every k-card hand dealt from a full deck
func Hands(k int) (probability.Set[Hand], error) {
	return probability.CombinationsFunc(Deck(), k, handOf)
}

// Flush selects flushes from a space of hands
func Flush(h Hand) bool { return h.IsFlush() }

// FlushCount is the closed-form number of 5-card flushes, 4·C(13, 5).
// Straight flushes are included.
func FlushCount() *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(len(Suits))), probability.MustChoose(Ranks, 5))
}

// FlushProbability is FlushCount / C(52, 5)
func FlushProbability() *big.Rat {
	return new(big.Rat).SetFrac(FlushCount(), probability.MustChoose(int64(DeckSize), 5))
}
