package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kydenul/probability"
)

func TestDeck(t *testing.T) {
	deck := Deck()
	require.Len(t, deck, DeckSize)

	seen := probability.NewSet[Card]()
	for i, c := range deck {
		assert.True(t, c.Valid())
		assert.Equal(t, i, c.Index())
		seen.Add(c)
	}
	assert.Equal(t, DeckSize, seen.Len())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{"Ah", Card{Rank: 14, Suit: 'h'}, false},
		{"td", Card{Rank: 10, Suit: 'd'}, false},
		{"2C", Card{Rank: 2, Suit: 'c'}, false},
		{"Ks", Card{Rank: 13, Suit: 's'}, false},
		{"1h", Card{}, true},
		{"Ax", Card{}, true},
		{"A", Card{}, true},
		{"10h", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, probability.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCard_String(t *testing.T) {
	for _, c := range Deck() {
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "??", Card{Rank: 1, Suit: 'h'}.String())
}
