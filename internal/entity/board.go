package entity

// BoardWidth is the width and height of the board.
const BoardWidth = 3

// Fields is the raw 3x3 cell matrix, indexed [row][col].
type Fields [BoardWidth][BoardWidth]Color

// lines lists every winning line as {startRow, startCol, deltaRow, deltaCol}:
// rows first, then columns, then the two diagonals.
var lines = [][4]int{
	{0, 0, 0, 1},
	{1, 0, 0, 1},
	{2, 0, 0, 1},
	{0, 0, 1, 0},
	{0, 1, 1, 0},
	{0, 2, 1, 0},
	{0, 0, 1, 1},
	{2, 0, -1, 1},
}

// EmptyFields - returns a matrix with every cell set to ColorNone.
func EmptyFields() Fields {
	var fields Fields
	for row := range fields {
		for col := range fields[row] {
			fields[row][col] = ColorNone
		}
	}

	return fields
}

// Board is a tic tac toe board. Row and column arguments must be in [0, BoardWidth);
// callers validate them before reaching the board.
type Board struct {
	fields Fields
}

func NewBoard() *Board {
	return &Board{fields: EmptyFields()}
}

// NewBoardFromFields - restores a board as-is, without checking that the position is reachable.
func NewBoardFromFields(fields Fields) *Board {
	return &Board{fields: fields}
}

func (that *Board) GetColor(row, col int) Color {
	return that.fields[row][col]
}

func (that *Board) HasColor(row, col int) bool {
	return that.fields[row][col] != ColorNone
}

// SetColor - writes a color unconditionally.
func (that *Board) SetColor(row, col int, color Color) {
	that.fields[row][col] = color
}

// FindWinningColor - returns the color of the first complete line, or ColorNone.
func (that *Board) FindWinningColor() Color {
	for _, line := range lines {
		if color := that.matchingLine(line[0], line[1], line[2], line[3]); color != ColorNone {
			return color
		}
	}

	return ColorNone
}

func (that *Board) matchingLine(startRow, startCol, deltaRow, deltaCol int) Color {
	color := that.fields[startRow][startCol]
	if color == ColorNone {
		return ColorNone
	}

	for i := 1; i < BoardWidth; i++ {
		if that.fields[startRow+deltaRow*i][startCol+deltaCol*i] != color {
			return ColorNone
		}
	}

	return color
}

func (that *Board) IsFull() bool {
	for _, row := range that.fields {
		for _, cell := range row {
			if cell == ColorNone {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	that.fields = EmptyFields()
}

// Fields - returns a copy of the cells.
func (that *Board) Fields() Fields {
	return that.fields
}
