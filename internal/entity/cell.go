package entity

// Cell is the content of a single board cell.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// Opponent - returns the other player's cell value.
func (that Cell) Opponent() Cell {
	if that == PlayerOne {
		return PlayerTwo
	}

	return PlayerOne
}
