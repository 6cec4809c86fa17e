package game

import "war-game/internal/shared"

// Outcome is the result of a single battle.
type Outcome int

const (
	Aborted      Outcome = iota // A side had no card to draw
	PlayerWins                  // Player's card was higher
	ComputerWins                // Computer's card was higher
	Tie                         // Equal values, a war follows
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player_wins"
	case ComputerWins:
		return "computer_wins"
	case Tie:
		return "tie"
	default:
		return "aborted"
	}
}

// Compare decides a battle between the player's card and the computer's card.
func Compare(playerCard, computerCard shared.Card) Outcome {
	switch {
	case playerCard.Value > computerCard.Value:
		return PlayerWins
	case computerCard.Value > playerCard.Value:
		return ComputerWins
	default:
		return Tie
	}
}
