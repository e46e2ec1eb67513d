package protocol

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

// Message types on the wire.
const (
	TypeMove  = "move"
	TypeReset = "reset"

	TypeColor   = "color"
	TypeState   = "state"
	TypePlayers = "players"
	TypeError   = "error"
)

// InternalErrorText is sent when a request failed for reasons the client can not fix.
const InternalErrorText = "internal server error"

// ColorMessage assigns a seat. ColorNone makes the client a spectator.
type ColorMessage struct {
	Type  string       `json:"type"`
	Color entity.Color `json:"color"`
}

// StateMessage carries the full game state. Winner is null while the game is ongoing.
type StateMessage struct {
	Type   string        `json:"type"`
	Fields entity.Fields `json:"fields"`
	Turn   entity.Color  `json:"turn"`
	Winner *entity.Color `json:"winner"`
}

// PlayersMessage reports how many clients are connected, spectators included.
type PlayersMessage struct {
	Type        string `json:"type"`
	PlayerCount int    `json:"playerCount"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewColorMessage(color entity.Color) ColorMessage {
	return ColorMessage{Type: TypeColor, Color: color}
}

func NewStateMessage(game *entity.Game) StateMessage {
	return StateMessage{
		Type:   TypeState,
		Fields: game.Fields(),
		Turn:   game.Turn(),
		Winner: game.Winner(),
	}
}

func NewPlayersMessage(count int) PlayersMessage {
	return PlayersMessage{Type: TypePlayers, PlayerCount: count}
}

func NewErrorMessage(text string) ErrorMessage {
	return ErrorMessage{Type: TypeError, Message: text}
}
