package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

// Game is the turn-taking state machine around a Board.
//
// While the game is in progress winner is nil and turn is red or blue. Once it is over,
// winner points at the winning color (ColorNone for a tie) and turn is ColorNone.
// The winner is recomputed from the board after every mutation and on restore.
type Game struct {
	board  *Board
	turn   Color
	winner *Color
}

// NewGame - creates a fresh game where red moves first.
func NewGame() *Game {
	return &Game{
		board: NewBoard(),
		turn:  FirstTurn,
	}
}

// RestoreGame - rebuilds a game from a snapshot. The position is not validated; only the winner is recomputed.
// Values other than red and blue, empty strings included, read as ColorNone.
func RestoreGame(snapshot Snapshot) *Game {
	fields := snapshot.Fields
	for row := range fields {
		for col := range fields[row] {
			fields[row][col] = knownOrNone(fields[row][col])
		}
	}

	turn := knownOrNone(snapshot.Turn)

	game := &Game{
		board: NewBoardFromFields(fields),
		turn:  turn,
	}
	game.recalculateWinner()

	return game
}

func knownOrNone(color Color) Color {
	if color.IsPlayer() {
		return color
	}

	return ColorNone
}

func (that *Game) recalculateWinner() {
	if color := that.board.FindWinningColor(); color != ColorNone {
		that.winner = &color
		return
	}

	if that.board.IsFull() {
		tie := ColorNone
		that.winner = &tie
		return
	}

	that.winner = nil
}

// Winner - nil while the game is ongoing, ColorNone for a tie, otherwise the winning color.
func (that *Game) Winner() *Color {
	if that.winner == nil {
		return nil
	}

	winner := *that.winner

	return &winner
}

func (that *Game) Turn() Color {
	return that.turn
}

func (that *Game) Fields() Fields {
	return that.board.Fields()
}

func (that *Game) IsGameOver() bool {
	return that.winner != nil
}

// CanPlaceColor - reports whether color may be placed at (row, col) right now.
func (that *Game) CanPlaceColor(color Color, row, col int) bool {
	return color.IsPlayer() &&
		!that.IsGameOver() &&
		that.turn == color &&
		!that.board.HasColor(row, col)
}

// PlaceColor - applies a move or returns apperror.ErrInvalidMove without touching the state.
func (that *Game) PlaceColor(color Color, row, col int) error {
	if !that.CanPlaceColor(color, row, col) {
		return fmt.Errorf("%w: %s at %d,%d", apperror.ErrInvalidMove, color, row, col)
	}

	that.board.SetColor(row, col, color)
	that.recalculateWinner()

	if that.IsGameOver() {
		that.turn = ColorNone
	} else {
		that.turn = that.turn.Opposite()
	}

	return nil
}

// Serialize - projects the game onto its durable form.
func (that *Game) Serialize() Snapshot {
	return Snapshot{
		Fields: that.board.Fields(),
		Turn:   that.turn,
	}
}

// Clone - returns an independent copy, so a move can be persisted before it is committed.
func (that *Game) Clone() *Game {
	return RestoreGame(that.Serialize())
}
