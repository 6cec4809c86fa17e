package shared

import "slices"

// Pot holds the cards at stake during one war chain.
type Pot struct {
	cards []Card
}

// NewPot creates an empty pot.
func NewPot() *Pot {
	return &Pot{cards: []Card{}}
}

// Add stakes cards in the pot.
func (p *Pot) Add(cards ...Card) {
	p.cards = append(p.cards, cards...)
}

// Size returns the number of staked cards.
func (p *Pot) Size() int {
	if p == nil {
		return 0
	}
	return len(p.cards)
}

// Cards returns a copy of the staked cards.
func (p *Pot) Cards() []Card {
	if p == nil {
		return nil
	}
	return slices.Clone(p.cards)
}

// Take empties the pot and returns what it held.
func (p *Pot) Take() []Card {
	if p == nil {
		return nil
	}
	cards := p.cards
	p.cards = []Card{}
	return cards
}
