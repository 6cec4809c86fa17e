package console

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"war-game/internal/protocol"
	"war-game/internal/shared"

	"github.com/pterm/pterm"
)

// Renderer turns game events into lines of text.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer creates a text renderer writing to out.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

// Send renders one encoded event. It matches game.MessageSender.
func (r *Renderer) Send(message []byte) {
	msg, err := protocol.Decode(message)
	if err != nil {
		log.Printf("Error decoding event: %v", err)
		return
	}

	switch msg.Type {
	case protocol.TypeGameStart:
		var p protocol.GameStartPayload
		if r.decode(msg, &p) {
			r.welcome(p)
		}
	case protocol.TypeDeal:
		var p protocol.DealPayload
		if r.decode(msg, &p) {
			r.println(fmt.Sprintf("Cards dealt: %d each.", p.PlayerCards))
		}
	case protocol.TypeCardDrawn:
		var p protocol.CardDrawnPayload
		if r.decode(msg, &p) {
			r.println(fmt.Sprintf("%s draws: %s", p.PlayerName, r.card(p.Card)))
		}
	case protocol.TypeBattleResult:
		var p protocol.BattleResultPayload
		if r.decode(msg, &p) {
			r.battleResult(p)
		}
	case protocol.TypeWar:
		var p protocol.WarPayload
		if r.decode(msg, &p) {
			r.println(p.Text)
		}
	case protocol.TypeRoundEnd:
		var p protocol.RoundEndPayload
		if r.decode(msg, &p) {
			r.println(fmt.Sprintf("Round %d | %s: %d cards | %s: %d cards",
				p.Round, p.PlayerName, p.PlayerCards, p.ComputerName, p.ComputerCards))
		}
	case protocol.TypeGameOver:
		var p protocol.GameOverPayload
		if r.decode(msg, &p) {
			r.gameOver(p)
		}
	case protocol.TypeGameQuit:
		var p protocol.GameQuitPayload
		if r.decode(msg, &p) {
			r.println(fmt.Sprintf("Game stopped after %d rounds.", p.Rounds))
		}
	default:
		log.Printf("Unhandled event type '%s'", msg.Type)
	}
}

func (r *Renderer) decode(msg protocol.Message, v interface{}) bool {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		log.Printf("Error unmarshalling %s payload: %v", msg.Type, err)
		return false
	}
	return true
}

func (r *Renderer) welcome(p protocol.GameStartPayload) {
	title := "Welcome to War!"
	if r.color {
		r.println(pterm.DefaultHeader.Sprint(title))
	} else {
		r.println(title)
	}
	if len(p.Players) == 2 {
		r.println(fmt.Sprintf("%s vs %s", p.Players[0].Name, p.Players[1].Name))
	}
	r.println("The higher card takes both. Equal cards mean war.")
}

func (r *Renderer) battleResult(p protocol.BattleResultPayload) {
	switch p.Outcome {
	case "tie":
		r.println(r.highlight("It's a tie! WAR!"))
	case "aborted":
		r.println("A player is out of cards.")
	default:
		r.println(fmt.Sprintf("%s wins the battle and takes %d cards.", p.WinnerName, p.CardsWon))
	}
}

func (r *Renderer) gameOver(p protocol.GameOverPayload) {
	line := fmt.Sprintf("GAME OVER! %s wins the game after %d rounds.", p.WinnerName, p.Rounds)
	r.println(r.highlight(line))
}

// card describes a card, red suits in red when colour is on.
func (r *Renderer) card(c shared.Card) string {
	text := c.Describe()
	if !r.color {
		return text
	}
	if c.Suit.IsRed() {
		return pterm.LightRed(text)
	}
	return pterm.Bold.Sprint(text)
}

func (r *Renderer) highlight(text string) string {
	if !r.color {
		return text
	}
	return pterm.LightYellow(text)
}

func (r *Renderer) println(line string) {
	fmt.Fprintln(r.out, line)
}

// JSONRenderer writes each event envelope on its own line.
type JSONRenderer struct {
	out io.Writer
}

func NewJSONRenderer(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Send matches game.MessageSender.
func (r *JSONRenderer) Send(message []byte) {
	if _, err := fmt.Fprintf(r.out, "%s\n", message); err != nil {
		log.Printf("Error writing event: %v", err)
	}
}
