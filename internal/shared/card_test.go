package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_IsSpecial(t *testing.T) {
	for value := MinValue; value <= MaxValue; value++ {
		c := Card{Suit: Clubs, Value: value}
		assert.Equal(t, value >= 11, c.IsSpecial(), "value %d", value)
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		description string
		expected    Suit
	}{
		{"clubs", Clubs},
		{"Diamonds", Diamonds},
		{"HEARTS", Hearts},
		{" spades ", Spades},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			suit, err := ParseSuit(tt.description)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, suit)
		})
	}

	_, err := ParseSuit("stars")
	assert.ErrorIs(t, err, ErrInvalidSuit)
	assert.Contains(t, err.Error(), "stars")
}

func TestNewCard(t *testing.T) {
	c, err := NewCard("Hearts", 10)
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Hearts, Value: 10}, c)

	_, err = NewCard("cups", 10)
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = NewCard("clubs", 1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewCard("clubs", 15)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCard_Describe(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Suit: Hearts, Value: 10}, "10 of Hearts ♥"},
		{Card{Suit: Clubs, Value: 2}, "2 of Clubs ♣"},
		{Card{Suit: Diamonds, Value: 11}, "Jack of Diamonds ♦"},
		{Card{Suit: Spades, Value: 12}, "Queen of Spades ♠"},
		{Card{Suit: Hearts, Value: 13}, "King of Hearts ♥"},
		{Card{Suit: Clubs, Value: 14}, "Ace of Clubs ♣"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.card.Describe())
			assert.Equal(t, tt.expected, tt.card.String())
		})
	}
}

func TestSuit(t *testing.T) {
	assert.Equal(t, "Diamonds", Diamonds.Name())
	assert.Equal(t, "♠", Spades.Symbol())
	assert.Equal(t, "?", Suit("stars").Symbol())
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Spades.IsRed())
}
