package shared

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSuit  = errors.New("invalid suit")
	ErrInvalidValue = errors.New("invalid card value")
)

// Suit represents the suit of a card (clubs, diamonds, hearts or spades).
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists the four suits in build order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Display symbol per suit
var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// Face names for the special cards
var faceNames = map[int]string{
	11: "Jack",
	12: "Queen",
	13: "King",
	14: "Ace",
}

const (
	MinValue = 2
	MaxValue = 14
)

// ParseSuit resolves a suit description, ignoring case.
func ParseSuit(description string) (Suit, error) {
	suit := Suit(strings.ToLower(strings.TrimSpace(description)))
	if _, ok := suitSymbols[suit]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSuit, description)
	}
	return suit, nil
}

// Symbol returns the suit's display symbol, or "?" for an unknown suit.
func (s Suit) Symbol() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Name returns the capitalized description, e.g. "Hearts".
func (s Suit) Name() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a single card in the War game.
type Card struct {
	Suit  Suit `json:"suit"`  // The suit of the card
	Value int  `json:"value"` // 2..14, Ace high
}

// NewCard creates a card from a suit description and a value.
func NewCard(description string, value int) (Card, error) {
	suit, err := ParseSuit(description)
	if err != nil {
		return Card{}, err
	}
	if value < MinValue || value > MaxValue {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	return Card{Suit: suit, Value: value}, nil
}

// IsSpecial reports whether the card is a face card or an ace.
func (c Card) IsSpecial() bool {
	return c.Value >= 11
}

// Describe renders the card for humans, e.g. "Queen of Spades ♠" or "7 of Clubs ♣".
func (c Card) Describe() string {
	rank := fmt.Sprint(c.Value)
	if c.IsSpecial() {
		rank = faceNames[c.Value]
	}
	return fmt.Sprintf("%s of %s %s", rank, c.Suit.Name(), c.Suit.Symbol())
}

func (c Card) String() string {
	return c.Describe()
}
