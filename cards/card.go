// Package cards builds sample spaces over a standard 52-card deck.
package cards

import (
	"fmt"
	"strings"

	"github.com/kydenul/probability"
)

const (
	// Ranks in a suit
	Ranks = 13
	// Suits in the deck, in deck order
	Suits = "cdhs"
	// DeckSize is the number of cards in a standard deck
	DeckSize = Ranks * len(Suits)

	rankChars = "23456789TJQKA"
)

// Card is a playing card. Rank runs 2..14 with the Ace high.
type Card struct {
	Rank int
	Suit byte
}

// Deck returns the 52 cards ordered by suit then rank
func Deck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := 0; s < len(Suits); s++ {
		for rank := 2; rank <= 14; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: Suits[s]})
		}
	}
	return deck
}

// ParseCard parses a two-character card such as "Ah", "Td" or "2c"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, invalidCard("ParseCard", "card %q must be rank then suit", s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return Card{}, invalidCard("ParseCard", "unknown rank %q in %q", s[0], s)
	}
	c := Card{Rank: rank + 2, Suit: lower(s[1])}
	if !c.Valid() {
		return Card{}, invalidCard("ParseCard", "unknown suit %q in %q", s[1], s)
	}
	return c, nil
}

// ParseCards parses space-separated cards
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Valid reports whether c is one of the 52 cards
func (c Card) Valid() bool {
	return c.Rank >= 2 && c.Rank <= 14 && strings.IndexByte(Suits, c.Suit) >= 0
}

// Index returns the position of c in Deck, or -1 for an invalid card
func (c Card) Index() int {
	if !c.Valid() {
		return -1
	}
	return strings.IndexByte(Suits, c.Suit)*Ranks + c.Rank - 2
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%c", rankChars[c.Rank-2], c.Suit)
}

func invalidCard(op, format string, args ...any) error {
	return probability.ErrInvalidArgument.WithOperation(op).WithDetails(format, args...)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
