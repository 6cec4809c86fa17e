package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPot(t *testing.T) {
	p := NewPot()
	assert.Equal(t, 0, p.Size())

	a := Card{Suit: Clubs, Value: 9}
	b := Card{Suit: Diamonds, Value: 9}
	p.Add(a, b)
	assert.Equal(t, 2, p.Size())

	cards := p.Cards()
	cards[0] = Card{}
	assert.Equal(t, []Card{a, b}, p.Cards())

	assert.Equal(t, []Card{a, b}, p.Take())
	assert.Equal(t, 0, p.Size())
	assert.Empty(t, p.Take())
}

func TestPot_Nil(t *testing.T) {
	var p *Pot
	assert.Equal(t, 0, p.Size())
	assert.Nil(t, p.Cards())
	assert.Nil(t, p.Take())
}
