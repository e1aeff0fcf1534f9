package game

import "fmt"

// Position is a cell on the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Index is the position's slot in the row-major occupancy array.
func (p Position) Index() int {
	return p.Row*Size + p.Column
}

// PositionOf is the inverse of Position.Index.
func PositionOf(index int) Position {
	return Position{Row: index / Size, Column: index % Size}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Column >= 0 && p.Row < Size && p.Column < Size
}

func (p Position) IsCorner() bool {
	return (p.Row == 0 || p.Row == Size-1) && (p.Column == 0 || p.Column == Size-1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
