package connectfour

import (
	"github.com/DANI05132/conecta4/internal/apperror"
	"github.com/DANI05132/conecta4/internal/entity"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Game holds the whole state of a single match: the board, whose turn
// it is and how the match ended.
type Game struct {
	Board  entity.Board
	Turn   entity.Cell
	Winner entity.Cell
	Status string
	Moves  int
}

// NewGame - returns a fresh game with PlayerOne to move.
func NewGame() *Game {
	return &Game{
		Turn:   entity.PlayerOne,
		Status: StatusOngoing,
	}
}

// MakeTurn - drops the active player's piece into the column and
// updates the game status. On success it returns the landing row.
func (that *Game) MakeTurn(column int) (int, error) {
	if that.IsFinished() {
		return -1, apperror.ErrGameFinished
	}

	row, err := that.Board.DropPiece(column, that.Turn)
	if err != nil {
		return -1, err
	}

	that.Moves++
	that.updateStatus(row, column)

	return row, nil
}

// updateStatus - evaluates the board after a drop: a win through the
// landing cell first, then a full-board draw, otherwise the turn passes
// to the opponent.
func (that *Game) updateStatus(row, column int) {
	switch {
	case that.Board.HasConnectFour(row, column, that.Turn):
		that.Winner = that.Turn
		that.Status = StatusWon
	case that.Board.IsFull():
		that.Status = StatusDraw
	default:
		that.Turn = that.Turn.Opponent()
	}
}

// IsFinished - reports whether the game reached a terminal state.
func (that *Game) IsFinished() bool {
	return that.Status != StatusOngoing
}
