package game

import (
	"log"
	"math/rand/v2"
	"time"

	"war-game/internal/protocol"
	"war-game/internal/shared"

	"github.com/google/uuid"
)

// GameState represents the current state of the game.
type GameState string

const (
	Dealing        GameState = "Dealing"        // Master deck built, cards not dealt yet
	AwaitingBattle GameState = "AwaitingBattle" // Ready for the next battle
	BattleResolved GameState = "BattleResolved" // Last battle had a strict winner
	War            GameState = "War"            // Last battle was a tie, hidden cards staked
	GameOver       GameState = "GameOver"       // One side is out of cards or the round limit hit
)

const (
	HandSize    = shared.DeckSize / 2 // Cards dealt to each side
	HiddenCards = 3                   // Face-down cards each side stakes in a war
)

// MessageSender receives every event the game emits, encoded with protocol.NewMessage.
type MessageSender func(message []byte)

// InputSource decides whether the game goes on after a round.
type InputSource interface {
	Continue() (bool, error)
}

// Options configures a new game.
type Options struct {
	PlayerName   string
	ComputerName string
	Seed         int64 // 0 seeds from the clock
	MaxRounds    int   // 0 plays until a deck is empty
}

// Game represents the War state machine.
type Game struct {
	ID          string
	Player      *shared.Player
	Computer    *shared.Player
	Deck        *shared.Deck // Master deck, empty once dealt
	State       GameState
	LastOutcome Outcome
	Winner      *shared.Player
	Rounds      int
	Wars        int
	MaxRounds   int

	rng         *rand.Rand
	pot         *shared.Pot    // Cards at stake in the battle being resolved
	exhausted   *shared.Player // Side whose draw failed in the last aborted battle
	lastAward   int            // Cards delivered by the last award or forfeit
	sendMessage MessageSender
}

// RoundResult describes one round: a battle and any wars it triggered.
type RoundResult struct {
	Outcome Outcome        // Final battle outcome, never Tie
	Winner  *shared.Player // Side that collected the cards
	Battles int
	Wars    int
	Awarded int // Cards delivered to Winner
}

// Result describes a finished Run.
type Result struct {
	Winner *shared.Player // nil when the human quit
	Rounds int
	Wars   int
	Quit   bool
}

// NewGame initializes a new game with a built master deck.
func NewGame(opts Options, sender MessageSender) (*Game, error) {
	deck := shared.NewDeck()
	if err := deck.Build(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	playerName := opts.PlayerName
	if playerName == "" {
		playerName = "Player"
	}
	computerName := opts.ComputerName
	if computerName == "" {
		computerName = "Computer"
	}

	return &Game{
		ID:          uuid.New().String(),
		Player:      shared.NewPlayer(uuid.NewString(), playerName, false),
		Computer:    shared.NewPlayer(uuid.NewString(), computerName, true),
		Deck:        deck,
		State:       Dealing,
		LastOutcome: Aborted,
		MaxRounds:   opts.MaxRounds,
		rng:         newRand(seed),
		pot:         shared.NewPot(),
		sendMessage: sender,
	}, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Deal shuffles the master deck and gives 26 cards to the player, then 26 to the computer.
func (g *Game) Deal() {
	if g.State != Dealing {
		log.Printf("Game %s: Cannot deal in state %s.", g.ID, g.State)
		return
	}
	log.Printf("Game %s: Dealing...", g.ID)

	g.send(protocol.TypeGameStart, protocol.GameStartPayload{
		GameID:  g.ID,
		Players: []protocol.PlayerInfo{playerInfo(g.Player), playerInfo(g.Computer)},
	})

	g.Deck.Shuffle(g.rng)
	for _, p := range []*shared.Player{g.Player, g.Computer} {
		for range HandSize {
			card, ok := g.Deck.Draw()
			if !ok {
				log.Printf("Game %s: Master deck ran out while dealing to %s.", g.ID, p.Name)
				break
			}
			p.AddCard(card)
		}
	}

	g.State = AwaitingBattle
	log.Printf("Game %s: Dealt %d cards to %s and %d to %s.", g.ID,
		g.Player.CardCount(), g.Player.Name, g.Computer.CardCount(), g.Computer.Name)
	g.send(protocol.TypeDeal, protocol.DealPayload{
		PlayerCards:   g.Player.CardCount(),
		ComputerCards: g.Computer.CardCount(),
	})
}

// Battle resolves a single comparison with pot already at stake.
// A win delivers both battle cards and the pot to the winner. A tie stakes both cards
// plus up to three hidden cards per side in pot and returns Tie; the caller is expected
// to battle again with the same pot. Aborted means a side could not draw, and any card
// already revealed is left in pot.
func (g *Game) Battle(pot *shared.Pot) Outcome {
	if pot == nil {
		pot = shared.NewPot()
	}
	g.pot = pot

	playerCard, ok := g.Player.DrawCard()
	if !ok {
		return g.abort(g.Player)
	}
	g.notifyCardDrawn(g.Player, playerCard)

	computerCard, ok := g.Computer.DrawCard()
	if !ok {
		pot.Add(playerCard)
		return g.abort(g.Computer)
	}
	g.notifyCardDrawn(g.Computer, computerCard)

	outcome := Compare(playerCard, computerCard)
	switch outcome {
	case PlayerWins:
		g.award(g.Player, outcome, pot, playerCard, computerCard)
	case ComputerWins:
		g.award(g.Computer, outcome, pot, playerCard, computerCard)
	default:
		g.war(pot, playerCard, computerCard)
	}
	return outcome
}

func (g *Game) abort(exhausted *shared.Player) Outcome {
	log.Printf("Game %s: %s has no card to draw, battle aborted.", g.ID, exhausted.Name)
	g.exhausted = exhausted
	g.LastOutcome = Aborted
	g.send(protocol.TypeBattleResult, protocol.BattleResultPayload{Outcome: Aborted.String()})
	return Aborted
}

// award gives the battle cards followed by the pot to winner, one card at a time.
func (g *Game) award(winner *shared.Player, outcome Outcome, pot *shared.Pot, battleCards ...shared.Card) {
	won := append(battleCards, pot.Take()...)
	for _, card := range won {
		winner.AddCard(card)
	}
	g.lastAward = len(won)

	g.State = BattleResolved
	g.LastOutcome = outcome
	log.Printf("Game %s: %s wins the battle and takes %d cards.", g.ID, winner.Name, len(won))
	g.send(protocol.TypeBattleResult, protocol.BattleResultPayload{
		Outcome:    outcome.String(),
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		CardsWon:   len(won),
	})
}

// war stakes the tied cards and the hidden cards of both sides in pot.
func (g *Game) war(pot *shared.Pot, playerCard, computerCard shared.Card) {
	g.State = War
	g.LastOutcome = Tie
	g.Wars++
	g.send(protocol.TypeBattleResult, protocol.BattleResultPayload{Outcome: Tie.String()})

	pot.Add(playerCard, computerCard)
	playerHidden := g.stakeHidden(g.Player, pot)
	computerHidden := g.stakeHidden(g.Computer, pot)

	log.Printf("Game %s: War! %s staked %d hidden cards, %s staked %d. Pot is %d cards.",
		g.ID, g.Player.Name, playerHidden, g.Computer.Name, computerHidden, pot.Size())
	g.send(protocol.TypeWar, protocol.WarPayload{
		Text:           protocol.HiddenCardsText,
		PlayerHidden:   playerHidden,
		ComputerHidden: computerHidden,
		PotSize:        pot.Size(),
	})
}

// stakeHidden draws up to HiddenCards cards from p into pot; failed draws are skipped.
func (g *Game) stakeHidden(p *shared.Player, pot *shared.Pot) int {
	staked := 0
	for range HiddenCards {
		card, ok := p.DrawCard()
		if !ok {
			continue
		}
		pot.Add(card)
		staked++
	}
	return staked
}

// PlayRound plays battles until one is not a tie, then runs the game-over check.
func (g *Game) PlayRound() RoundResult {
	if g.State == Dealing || g.State == GameOver {
		log.Printf("Game %s: Cannot play a round in state %s.", g.ID, g.State)
		return RoundResult{Outcome: Aborted}
	}
	g.State = AwaitingBattle

	pot := shared.NewPot()
	result := RoundResult{}
	g.lastAward = 0
	for {
		outcome := g.Battle(pot)
		result.Battles++
		if outcome != Tie {
			result.Outcome = outcome
			break
		}
		result.Wars++
	}

	switch result.Outcome {
	case PlayerWins:
		result.Winner = g.Player
	case ComputerWins:
		result.Winner = g.Computer
	case Aborted:
		result.Winner = g.forfeitPot(pot)
	}
	result.Awarded = g.lastAward

	g.Rounds++
	g.send(protocol.TypeRoundEnd, protocol.RoundEndPayload{
		Round:         g.Rounds,
		Wars:          result.Wars,
		PlayerName:    g.Player.Name,
		PlayerCards:   g.Player.CardCount(),
		ComputerName:  g.Computer.Name,
		ComputerCards: g.Computer.CardCount(),
	})

	g.CheckGameOver()
	return result
}

// forfeitPot hands an orphaned pot to the side that could still draw.
func (g *Game) forfeitPot(pot *shared.Pot) *shared.Player {
	receiver := g.Player
	if g.exhausted == g.Player {
		receiver = g.Computer
	}

	cards := pot.Take()
	for _, card := range cards {
		receiver.AddCard(card)
	}
	g.lastAward = len(cards)
	if len(cards) > 0 {
		log.Printf("Game %s: %s collects %d orphaned cards from the pot.", g.ID, receiver.Name, len(cards))
	}
	return receiver
}

// CheckGameOver ends the game when either deck is empty; the opponent wins.
func (g *Game) CheckGameOver() bool {
	switch {
	case g.State == GameOver:
		return true
	case g.State == Dealing:
		return false
	case g.Player.HasEmptyDeck():
		g.finish(g.Computer, "empty deck")
	case g.Computer.HasEmptyDeck():
		g.finish(g.Player, "empty deck")
	default:
		return false
	}
	return true
}

func (g *Game) finish(winner *shared.Player, reason string) {
	g.State = GameOver
	g.Winner = winner
	log.Printf("Game %s: Game Over! %s wins after %d rounds (%s).", g.ID, winner.Name, g.Rounds, reason)
	g.send(protocol.TypeGameOver, protocol.GameOverPayload{
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		Rounds:     g.Rounds,
		Reason:     reason,
	})
}

// leader returns the side holding more cards; the computer on a draw.
func (g *Game) leader() *shared.Player {
	if g.Player.CardCount() > g.Computer.CardCount() {
		return g.Player
	}
	return g.Computer
}

// Run deals if needed and plays rounds until the game ends or input asks to stop.
func (g *Game) Run(input InputSource) Result {
	if g.State == Dealing {
		g.Deal()
	}

	quit := false
	for !g.CheckGameOver() {
		g.PlayRound()
		if g.State == GameOver {
			break
		}
		if g.MaxRounds > 0 && g.Rounds >= g.MaxRounds {
			g.finish(g.leader(), "round limit")
			break
		}

		more, err := input.Continue()
		if err != nil {
			log.Printf("Game %s: Error reading input: %v", g.ID, err)
		}
		if err != nil || !more {
			quit = true
			log.Printf("Game %s: Quit after %d rounds.", g.ID, g.Rounds)
			g.send(protocol.TypeGameQuit, protocol.GameQuitPayload{Rounds: g.Rounds})
			break
		}
	}

	return Result{
		Winner: g.Winner,
		Rounds: g.Rounds,
		Wars:   g.Wars,
		Quit:   quit,
	}
}

// CardsInPlay counts every card in both decks, the master deck and the pot.
func (g *Game) CardsInPlay() int {
	return g.Player.CardCount() + g.Computer.CardCount() + g.Deck.Size() + g.pot.Size()
}

func (g *Game) notifyCardDrawn(p *shared.Player, card shared.Card) {
	g.send(protocol.TypeCardDrawn, protocol.CardDrawnPayload{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Card:       card,
	})
}

// send encodes an event and hands it to the sink, if any.
func (g *Game) send(msgType string, payload interface{}) {
	if g.sendMessage == nil {
		return
	}
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		log.Printf("Game %s: Error creating %s message: %v", g.ID, msgType, err)
		return
	}
	g.sendMessage(msg)
}

func playerInfo(p *shared.Player) protocol.PlayerInfo {
	return protocol.PlayerInfo{ID: p.ID, Name: p.Name, IsComputer: p.IsComputer}
}
