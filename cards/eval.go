package cards

import (
	poker "github.com/paulhankin/poker"
)

// Score evaluates a 3, 5 or 7 card poker hand with paulhankin/poker.
// Hands of equal strength get equal scores whatever their suits; 7-card
// hands score their best five cards.
func Score(h Hand) (int16, error) {
	pcs := toPoker(h.Cards())
	switch len(pcs) {
	case 3:
		var a [3]poker.Card
		copy(a[:], pcs)
		return poker.Eval3(&a), nil
	case 5:
		var a [5]poker.Card
		copy(a[:], pcs)
		return poker.Eval5(&a), nil
	case 7:
		var a [7]poker.Card
		copy(a[:], pcs)
		return poker.Eval7(&a), nil
	default:
		return 0, invalidCard("Score", "need 3, 5 or 7 cards, got %d", len(pcs))
	}
}

// Describe names the hand category, e.g. a flush or two pair
func Describe(h Hand) (string, error) {
	n := h.Len()
	if n != 3 && n != 5 && n != 7 {
		return "", invalidCard("Describe", "need 3, 5 or 7 cards, got %d", n)
	}
	return poker.Describe(toPoker(h.Cards()))
}

// Our ranks: 2..14 (Ace=14). Library: 1..13 (Ace=1).
func toPoker(cs []Card) []poker.Card {
	out := make([]poker.Card, len(cs))
	for i, c := range cs {
		var s poker.Suit
		switch c.Suit {
		case 'c':
			s = poker.Club
		case 'd':
			s = poker.Diamond
		case 'h':
			s = poker.Heart
		default:
			s = poker.Spade
		}

		r := poker.Rank(c.Rank)
		if c.Rank == 14 {
			r = poker.Rank(1)
		}
		// Hands only hold valid cards
		out[i], _ = poker.MakeCard(s, r)
	}
	return out
}
