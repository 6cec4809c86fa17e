package shared

// Player represents one side of a War game.
type Player struct {
	ID         string // Unique identifier for the player
	Name       string // Player's chosen name
	IsComputer bool   // Descriptive only, the computer draws blindly like the human
	Deck       *Deck  // Cards currently held by the player
}

// NewPlayer creates a new player with the given ID and name and an empty deck.
func NewPlayer(id string, name string, isComputer bool) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		IsComputer: isComputer,
		Deck:       NewDeck(),
	}
}

// DrawCard takes the top card of the player's deck.
func (p *Player) DrawCard() (Card, bool) {
	return p.Deck.Draw()
}

// AddCard adds a card to the bottom of the player's deck.
func (p *Player) AddCard(card Card) {
	p.Deck.Add(card)
}

func (p *Player) HasEmptyDeck() bool {
	return p.Deck.IsEmpty()
}

func (p *Player) CardCount() int {
	return p.Deck.Size()
}
