package session

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/protocol"
)

// Outbound is the write side of one client connection. Enqueue must not block and must keep order.
type Outbound interface {
	Enqueue(data []byte) error
}

// Session is one connected client: its seat and its outbound channel.
// The seat is only read and written by the owning room's event loop.
type Session struct {
	id    string
	color entity.Color
	out   Outbound
}

func New(color entity.Color, out Outbound) *Session {
	return &Session{
		id:    uuid.NewString(),
		color: color,
		out:   out,
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Color() entity.Color {
	return that.color
}

func (that *Session) SetColor(color entity.Color) {
	that.color = color
}

func (that *Session) IsSpectator() bool {
	return that.color == entity.ColorNone
}

// SendMessage - encodes msg as JSON and hands it to the connection. Delivery is not awaited.
func (that *Session) SendMessage(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return that.send(data)
}

func (that *Session) SendError(text string) error {
	return that.SendMessage(protocol.NewErrorMessage(text))
}

func (that *Session) send(data []byte) error {
	if err := that.out.Enqueue(data); err != nil {
		return fmt.Errorf("failed to send to session %s: %w", that.id, err)
	}

	return nil
}
