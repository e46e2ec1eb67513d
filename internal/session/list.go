package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// List is the set of sessions connected to one room, in connection order.
type List struct {
	sessions []*Session
}

func NewList() *List {
	return &List{}
}

func (that *List) Add(session *Session) {
	that.sessions = append(that.sessions, session)
}

func (that *List) Remove(session *Session) {
	for i, s := range that.sessions {
		if s == session {
			that.sessions = append(that.sessions[:i], that.sessions[i+1:]...)
			return
		}
	}
}

func (that *List) Len() int {
	return len(that.sessions)
}

// Broadcast - sends msg to every session. A failed send does not stop delivery to the rest;
// all failures are returned joined.
func (that *List) Broadcast(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	var errs []error
	for _, s := range that.sessions {
		if err = s.send(data); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// FindWithColor - returns the first session holding color, or nil.
func (that *List) FindWithColor(color entity.Color) *Session {
	for _, s := range that.sessions {
		if s.color == color {
			return s
		}
	}

	return nil
}

// FindNextColor - the seat for a newly connected client: red, then blue, then spectator.
func (that *List) FindNextColor() entity.Color {
	switch {
	case that.FindWithColor(entity.ColorRed) == nil:
		return entity.ColorRed
	case that.FindWithColor(entity.ColorBlue) == nil:
		return entity.ColorBlue
	default:
		return entity.ColorNone
	}
}
