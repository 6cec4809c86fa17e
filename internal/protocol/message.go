package protocol

import (
	"encoding/json"
	"war-game/internal/shared"
)

// Message types emitted by the game.
const (
	TypeGameStart    = "game_start"
	TypeDeal         = "deal"
	TypeCardDrawn    = "card_drawn"
	TypeBattleResult = "battle_result"
	TypeWar          = "war"
	TypeRoundEnd     = "round_end"
	TypeGameOver     = "game_over"
	TypeGameQuit     = "game_quit"
)

// HiddenCardsText is announced on every war, whatever the number of hidden cards drawn.
const HiddenCardsText = "Six hidden cards: XXX XXX"

// Message represents a generic game event.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "card_drawn", "war")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

type PlayerInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsComputer bool   `json:"is_computer"`
}

type GameStartPayload struct {
	GameID  string       `json:"game_id"`
	Players []PlayerInfo `json:"players"`
}

type DealPayload struct {
	PlayerCards   int `json:"player_cards"`
	ComputerCards int `json:"computer_cards"`
}

type CardDrawnPayload struct {
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	Card       shared.Card `json:"card"`
}

type BattleResultPayload struct {
	Outcome    string `json:"outcome"`
	WinnerID   string `json:"winner_id,omitempty"`
	WinnerName string `json:"winner_name,omitempty"`
	CardsWon   int    `json:"cards_won"`
}

type WarPayload struct {
	Text           string `json:"text"`
	PlayerHidden   int    `json:"player_hidden"`
	ComputerHidden int    `json:"computer_hidden"`
	PotSize        int    `json:"pot_size"`
}

type RoundEndPayload struct {
	Round         int    `json:"round"`
	Wars          int    `json:"wars"`
	PlayerName    string `json:"player_name"`
	PlayerCards   int    `json:"player_cards"`
	ComputerName  string `json:"computer_name"`
	ComputerCards int    `json:"computer_cards"`
}

type GameOverPayload struct {
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	Rounds     int    `json:"rounds"`
	Reason     string `json:"reason"`
}

type GameQuitPayload struct {
	Rounds int `json:"rounds"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// Decode parses an envelope produced by NewMessage.
func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}
