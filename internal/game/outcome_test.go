package game

import (
	"testing"

	"war-game/internal/shared"

	"github.com/stretchr/testify/assert"
)

func TestCompare_Antisymmetric(t *testing.T) {
	for a := shared.MinValue; a <= shared.MaxValue; a++ {
		for b := shared.MinValue; b <= shared.MaxValue; b++ {
			playerCard := shared.Card{Suit: shared.Hearts, Value: a}
			computerCard := shared.Card{Suit: shared.Spades, Value: b}

			got := Compare(playerCard, computerCard)
			reversed := Compare(computerCard, playerCard)
			switch {
			case a > b:
				assert.Equal(t, PlayerWins, got, "%d vs %d", a, b)
				assert.Equal(t, ComputerWins, reversed, "%d vs %d", b, a)
			case a < b:
				assert.Equal(t, ComputerWins, got, "%d vs %d", a, b)
				assert.Equal(t, PlayerWins, reversed, "%d vs %d", b, a)
			default:
				assert.Equal(t, Tie, got, "%d vs %d", a, b)
				assert.Equal(t, Tie, reversed, "%d vs %d", b, a)
			}
		}
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "player_wins", PlayerWins.String())
	assert.Equal(t, "computer_wins", ComputerWins.String())
	assert.Equal(t, "tie", Tie.String())
	assert.Equal(t, "aborted", Aborted.String())
}
