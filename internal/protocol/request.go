package protocol

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	textNotString     = "WebSocket message is not a string! Did you forget to JSON.stringify()?"
	textInvalidJSON   = "WebSocket message is not valid JSON!"
	textMissingType   = "WebSocket messages must be objects with a `type` string attribute!"
	textInvalidMove   = "`move` messages must have a numeric `row` and `col` value!"
	textUnknownTypeFm = "'%s' is not a valid message type!"
)

// offBoard marks a coordinate that was numeric but can never address a cell.
const offBoard = -1

// Error is a protocol violation. Its text goes back to the sender only.
type Error struct {
	Message string
}

func (that *Error) Error() string {
	return that.Message
}

// ErrNotString is returned by the transport for binary frames.
var ErrNotString = &Error{Message: textNotString}

// Request is a validated client message.
type Request struct {
	Type string
	Row  int
	Col  int
}

// OnBoard reports whether the move coordinates address a cell.
func (that *Request) OnBoard() bool {
	return that.Row >= 0 && that.Row < entity.BoardWidth &&
		that.Col >= 0 && that.Col < entity.BoardWidth
}

// ParseRequest - decodes and validates one text frame.
func ParseRequest(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, &Error{Message: textInvalidJSON}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Message: textInvalidJSON}
	}

	object, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Message: textMissingType}
	}

	msgType, ok := object["type"].(string)
	if !ok {
		return nil, &Error{Message: textMissingType}
	}

	switch msgType {
	case TypeMove:
		row, rowOK := object["row"].(float64)
		col, colOK := object["col"].(float64)
		if !rowOK || !colOK {
			return nil, &Error{Message: textInvalidMove}
		}

		return &Request{Type: TypeMove, Row: coordinate(row), Col: coordinate(col)}, nil
	case TypeReset:
		return &Request{Type: TypeReset}, nil
	default:
		return nil, &Error{Message: fmt.Sprintf(textUnknownTypeFm, msgType)}
	}
}

func coordinate(value float64) int {
	if value != math.Trunc(value) || value < 0 || value >= entity.BoardWidth {
		return offBoard
	}

	return int(value)
}
