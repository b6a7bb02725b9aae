package entity

import (
	"fmt"

	"github.com/DANI05132/conecta4/internal/apperror"
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// directions holds one vector per undirected axis: horizontal, vertical
// and both diagonals. The negation of each vector covers the other
// half-line.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Board is the 6x7 grid; the zero value is an empty board.
// Row 0 is the top row, row 5 the bottom one.
type Board [Rows][Columns]Cell

// DropPiece - puts the player's piece into the lowest empty cell of the
// column and returns the landing row. It is the only mutation path of
// the board.
func (that *Board) DropPiece(column int, player Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: %d", apperror.ErrColumnOutOfRange, column)
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][column] == Empty {
			that[row][column] = player

			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %d", apperror.ErrColumnFull, column)
}

// IsFull - reports whether no empty cell remains. Pieces stack
// bottom-up, so checking the top row is enough.
func (that *Board) IsFull() bool {
	for column := 0; column < Columns; column++ {
		if that[0][column] == Empty {
			return false
		}
	}

	return true
}

// HasConnectFour - reports whether a line of at least four cells owned
// by the player passes through (row, column).
func (that *Board) HasConnectFour(row, column int, player Cell) bool {
	for _, dir := range directions {
		count := 1
		count += that.countInDirection(row, column, dir[0], dir[1], player)
		count += that.countInDirection(row, column, -dir[0], -dir[1], player)

		if count >= ToWin {
			return true
		}
	}

	return false
}

// countInDirection counts consecutive cells of the player starting next
// to (row, column), stopping at the boundary or the first mismatch.
func (that *Board) countInDirection(row, column, deltaRow, deltaCol int, player Cell) int {
	count := 0

	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && that[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}

	return count
}
