package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DANI05132/conecta4/internal/apperror"
)

func TestBoard_DropPiece(t *testing.T) {
	t.Run("Lands on the bottom row of an empty column", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: a piece is dropped into column 3
		row, err := board.DropPiece(3, PlayerOne)
		require.NoError(t, err)

		// Then: it lands on the bottom row and nowhere else
		require.Equal(t, Rows-1, row)
		require.Equal(t, PlayerOne, board[Rows-1][3])

		for r := 0; r < Rows-1; r++ {
			require.Equal(t, Empty, board[r][3])
		}
	})

	t.Run("Stacks on the lowest empty row", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: pieces are dropped into the same column repeatedly
		// Then: each one lands exactly one row above the previous one
		for drop := 0; drop < Rows; drop++ {
			row, err := board.DropPiece(0, PlayerTwo)
			require.NoError(t, err)
			require.Equal(t, Rows-1-drop, row)
		}
	})

	t.Run("Error on full column, board unchanged", func(t *testing.T) {
		// Given: column 2 filled by six drops
		board := Board{}
		for drop := 0; drop < Rows; drop++ {
			_, err := board.DropPiece(2, PlayerOne)
			require.NoError(t, err)
		}

		before := board

		// When: a seventh piece goes into the same column
		row, err := board.DropPiece(2, PlayerTwo)

		// Then: the drop is rejected and nothing moved
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		require.Equal(t, -1, row)
		require.Equal(t, before, board)
	})

	t.Run("Error on column out of range", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: columns outside [0, 7) are used
		_, err := board.DropPiece(Columns, PlayerOne)
		require.ErrorIs(t, err, apperror.ErrColumnOutOfRange)

		_, err = board.DropPiece(-1, PlayerOne)
		require.ErrorIs(t, err, apperror.ErrColumnOutOfRange)

		// Then: the board stays empty
		require.Equal(t, Board{}, board)
	})
}

func TestBoard_HasConnectFour(t *testing.T) {
	t.Run("Vertical line", func(t *testing.T) {
		// Given: four pieces of the same player stacked in column 3
		board := Board{}
		var row int
		for drop := 0; drop < 4; drop++ {
			var err error
			row, err = board.DropPiece(3, PlayerOne)
			require.NoError(t, err)
		}

		// Then: the line through the last landing cell is detected
		require.Equal(t, 2, row)
		assert.True(t, board.HasConnectFour(row, 3, PlayerOne))
	})

	t.Run("Horizontal line", func(t *testing.T) {
		// Given: pieces on the bottom row in columns 0 to 3
		board := Board{}
		for column := 0; column < 4; column++ {
			_, err := board.DropPiece(column, PlayerOne)
			require.NoError(t, err)
		}

		// Then: the win is found from the end of the line
		assert.True(t, board.HasConnectFour(Rows-1, 3, PlayerOne))

		// Then: and from an interior cell of the line as well
		assert.True(t, board.HasConnectFour(Rows-1, 1, PlayerOne))
	})

	t.Run("Diagonal line", func(t *testing.T) {
		// Given: four pieces along the falling diagonal
		board := Board{}
		board[2][2] = PlayerTwo
		board[3][3] = PlayerTwo
		board[4][4] = PlayerTwo
		board[5][5] = PlayerTwo

		// Then: the line is found through an interior cell
		assert.True(t, board.HasConnectFour(3, 3, PlayerTwo))
	})

	t.Run("Anti-diagonal line", func(t *testing.T) {
		// Given: four pieces along the rising diagonal
		board := Board{}
		board[5][3] = PlayerOne
		board[4][4] = PlayerOne
		board[3][5] = PlayerOne
		board[2][6] = PlayerOne

		// Then: the line is found
		assert.True(t, board.HasConnectFour(4, 4, PlayerOne))
	})

	t.Run("Line longer than four", func(t *testing.T) {
		// Given: five pieces of the same player on the bottom row
		board := Board{}
		for column := 0; column < 5; column++ {
			_, err := board.DropPiece(column, PlayerOne)
			require.NoError(t, err)
		}

		// Then: the run counts as a win from an interior cell
		assert.True(t, board.HasConnectFour(Rows-1, 2, PlayerOne))

		// Then: and from both ends of the run
		assert.True(t, board.HasConnectFour(Rows-1, 0, PlayerOne))
		assert.True(t, board.HasConnectFour(Rows-1, 4, PlayerOne))
	})

	t.Run("Three in a row is not enough", func(t *testing.T) {
		// Given: only three pieces on the bottom row
		board := Board{}
		board[5][0] = PlayerOne
		board[5][1] = PlayerOne
		board[5][2] = PlayerOne

		// Then: no win
		assert.False(t, board.HasConnectFour(5, 2, PlayerOne))
	})

	t.Run("Opponent piece breaks the line", func(t *testing.T) {
		// Given: four in a row interrupted by the opponent
		board := Board{}
		board[5][0] = PlayerOne
		board[5][1] = PlayerOne
		board[5][2] = PlayerTwo
		board[5][3] = PlayerOne
		board[5][4] = PlayerOne

		// Then: no win on either side of the break
		assert.False(t, board.HasConnectFour(5, 1, PlayerOne))
		assert.False(t, board.HasConnectFour(5, 4, PlayerOne))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		board := Board{}
		assert.False(t, board.IsFull())
	})

	t.Run("One empty cell left", func(t *testing.T) {
		// Given: every cell but the last top one is occupied
		board := Board{}
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				board[r][c] = PlayerOne
			}
		}
		board[0][Columns-1] = Empty

		// Then: the board is not full yet
		require.False(t, board.IsFull())

		// When: the last cell is taken
		board[0][Columns-1] = PlayerTwo

		// Then: the board is full
		require.True(t, board.IsFull())
	})
}
