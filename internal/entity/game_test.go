package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

func colorPtr(color Color) *Color {
	return &color
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: red moves first on an empty board and nobody has won
	assert.Equal(t, ColorRed, game.Turn())
	assert.Nil(t, game.Winner())
	assert.False(t, game.IsGameOver())
	assert.Equal(t, EmptyFields(), game.Fields())
}

func TestGame_Serialize(t *testing.T) {
	t.Run("Fresh game round-trips", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: it is serialized and restored
		restored := RestoreGame(game.Serialize())

		// Then: the restored game is equal
		assert.Equal(t, game, restored)
	})

	t.Run("Finished game round-trips with the same winner", func(t *testing.T) {
		// Given: a game red has won
		game := NewGame()
		for _, move := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
			require.NoError(t, game.PlaceColor(game.Turn(), move[0], move[1]))
		}

		// When: it is serialized and restored
		restored := RestoreGame(game.Serialize())

		// Then: the winner is recomputed to the same value
		assert.Equal(t, colorPtr(ColorRed), restored.Winner())
		assert.Equal(t, ColorNone, restored.Turn())
		assert.Equal(t, game, restored)
	})

	t.Run("Restore treats missing cells as empty", func(t *testing.T) {
		// Given: a zero-value snapshot
		var snapshot Snapshot

		// When: it is restored
		game := RestoreGame(snapshot)

		// Then: the board is empty and nobody may move
		assert.Equal(t, EmptyFields(), game.Fields())
		assert.Equal(t, ColorNone, game.Turn())
		assert.Nil(t, game.Winner())
	})

	t.Run("Restore reads unknown colors as empty", func(t *testing.T) {
		// Given: a hand-edited snapshot with colors the game does not know
		snapshot := EmptyFields()
		snapshot[0][0] = "green"
		snapshot[1][1] = ColorRed

		// When: it is restored with an unknown turn
		game := RestoreGame(Snapshot{Fields: snapshot, Turn: "purple"})

		// Then: the unknown cell is empty, the known one is kept and nobody may move
		expected := EmptyFields()
		expected[1][1] = ColorRed
		assert.Equal(t, expected, game.Fields())
		assert.Equal(t, ColorNone, game.Turn())
		assert.Nil(t, game.Winner())
		assert.False(t, game.CanPlaceColor(ColorRed, 0, 0))
	})
}

func TestGame_CanPlaceColor(t *testing.T) {
	t.Run("True for the player on turn on an empty cell", func(t *testing.T) {
		assert.True(t, NewGame().CanPlaceColor(ColorRed, 1, 1))
	})

	t.Run("False for the wrong color", func(t *testing.T) {
		assert.False(t, NewGame().CanPlaceColor(ColorBlue, 1, 1))
	})

	t.Run("False for spectators", func(t *testing.T) {
		assert.False(t, NewGame().CanPlaceColor(ColorNone, 1, 1))
	})

	t.Run("False for an occupied cell", func(t *testing.T) {
		// Given: red has taken the center
		game := NewGame()
		require.NoError(t, game.PlaceColor(ColorRed, 1, 1))

		// Then: blue can not take it too
		assert.False(t, game.CanPlaceColor(ColorBlue, 1, 1))
		assert.True(t, game.CanPlaceColor(ColorBlue, 0, 0))
	})

	t.Run("False once the game is over", func(t *testing.T) {
		// Given: a finished game whose snapshot still claims blue is on turn
		game := RestoreGame(Snapshot{
			Fields: Fields{{r, r, r}, {b, b, n}, {n, n, n}},
			Turn:   ColorBlue,
		})

		// Then: no more moves are allowed
		assert.True(t, game.IsGameOver())
		assert.False(t, game.CanPlaceColor(ColorBlue, 1, 2))
	})
}

func TestGame_PlaceColor(t *testing.T) {
	t.Run("Turns alternate until the game ends", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: both players move in turn
		moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		expected := ColorRed
		for _, move := range moves {
			require.Equal(t, expected, game.Turn())
			require.NoError(t, game.PlaceColor(expected, move[0], move[1]))
			expected = expected.Opposite()
		}

		// Then: the winning move ends the game and the turn stays none
		require.NoError(t, game.PlaceColor(ColorRed, 0, 2))
		assert.Equal(t, ColorNone, game.Turn())
		assert.Equal(t, colorPtr(ColorRed), game.Winner())

		err := game.PlaceColor(ColorBlue, 2, 2)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, ColorNone, game.Turn())
	})

	t.Run("A full board without a line is a tie", func(t *testing.T) {
		// Given: a game one move away from a full board
		game := RestoreGame(Snapshot{
			Fields: Fields{{r, b, r}, {r, b, b}, {b, r, n}},
			Turn:   ColorRed,
		})

		// When: red fills the last cell
		require.NoError(t, game.PlaceColor(ColorRed, 2, 2))

		// Then: the game ends in a tie
		assert.Equal(t, colorPtr(ColorNone), game.Winner())
		assert.Equal(t, ColorNone, game.Turn())
	})

	t.Run("Invalid moves leave the state unchanged", func(t *testing.T) {
		// Given: red has taken the center
		game := NewGame()
		require.NoError(t, game.PlaceColor(ColorRed, 1, 1))
		before := game.Serialize()

		// When: red moves out of turn and blue moves onto the center
		errTurn := game.PlaceColor(ColorRed, 0, 0)
		errCell := game.PlaceColor(ColorBlue, 1, 1)

		// Then: both fail and nothing changed
		require.ErrorIs(t, errTurn, apperror.ErrInvalidMove)
		require.ErrorIs(t, errCell, apperror.ErrInvalidMove)
		assert.Equal(t, before, game.Serialize())
		assert.Nil(t, game.Winner())
	})

	t.Run("Restored game continues to a red win", func(t *testing.T) {
		// Given: a restored mid-game snapshot with blue on turn
		game := RestoreGame(Snapshot{
			Fields: Fields{{b, r, r}, {n, b, n}, {n, n, r}},
			Turn:   ColorBlue,
		})
		require.False(t, game.IsGameOver())
		require.Nil(t, game.Winner())

		// When: blue plays 1,0
		require.NoError(t, game.PlaceColor(ColorBlue, 1, 0))

		// Then: red is on turn and nobody has won
		assert.Equal(t, ColorRed, game.Turn())
		assert.Nil(t, game.Winner())
		assert.Equal(t, ColorBlue, game.Fields()[1][0])

		// When: red plays 1,2
		require.NoError(t, game.PlaceColor(ColorRed, 1, 2))

		// Then: red has completed the right column
		assert.Equal(t, ColorNone, game.Turn())
		assert.Equal(t, colorPtr(ColorRed), game.Winner())
		assert.Equal(t, ColorRed, game.Fields()[1][2])
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game and its clone
	game := NewGame()
	clone := game.Clone()

	// When: the clone is mutated
	require.NoError(t, clone.PlaceColor(ColorRed, 0, 0))

	// Then: the original is untouched
	assert.Equal(t, EmptyFields(), game.Fields())
	assert.Equal(t, ColorRed, game.Turn())
}
