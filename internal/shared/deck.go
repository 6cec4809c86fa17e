package shared

import (
	"errors"
	"log"
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

var ErrDeckNotEmpty = errors.New("deck is not empty")

// Deck represents an ordered collection of cards.
// The top of the deck is the end of Cards.
type Deck struct {
	Cards []Card
}

// NewDeck returns an empty deck.
func NewDeck() *Deck {
	return &Deck{Cards: []Card{}}
}

// NewDeckFrom returns a deck holding cards in the given order; the last card is drawn first.
func NewDeckFrom(cards ...Card) *Deck {
	return &Deck{Cards: slices.Clone(cards)}
}

// NewStandardDeck creates a built, unshuffled 52-card deck.
func NewStandardDeck() *Deck {
	d := NewDeck()
	// Cannot fail on a fresh deck
	_ = d.Build()
	return d
}

// Build fills an empty deck with every suit and value.
func (d *Deck) Build() error {
	if len(d.Cards) != 0 {
		return ErrDeckNotEmpty
	}

	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for value := MinValue; value <= MaxValue; value++ {
			cards = append(cards, Card{Suit: suit, Value: value})
		}
	}
	d.Cards = cards
	return nil
}

// Shuffle randomizes the order of cards in the deck. A nil rng uses the global source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
	if rng == nil {
		rand.Shuffle(len(d.Cards), swap)
	} else {
		rng.Shuffle(len(d.Cards), swap)
	}
	log.Println("Deck shuffled.")
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	last := len(d.Cards) - 1
	card = d.Cards[last]
	d.Cards = d.Cards[:last]
	return card, true
}

// Add puts a card at the bottom of the deck, so it is drawn last.
func (d *Deck) Add(card Card) {
	d.Cards = slices.Insert(d.Cards, 0, card)
}

// Size returns the number of cards left.
func (d *Deck) Size() int {
	return len(d.Cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}
