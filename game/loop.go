package game

import (
	"math"

	"github.com/pkg/errors"
)

// Terminal is where a pebble comes out after riding a loop, and the
// direction it travels in from there.
type Terminal struct {
	Position
	Direction Direction
}

// Rotation describes the arc of a loop for drawing: the corner it is centred
// on, the start and end angles in radians, and its radius in cells.
type Rotation struct {
	CenterRow    int
	CenterColumn int
	StartAngle   float64
	EndAngle     float64
	Radius       int
}

// LoopRadius returns which of the concentric loops (0, 1 or 2) the cell lies
// on when leaving it along d.
func LoopRadius(d Direction, row, column int) int {
	if d.IsHorizontal() {
		if row < Size/2 {
			return row
		}
		return Size - 1 - row
	}
	if column < Size/2 {
		return column
	}
	return Size - 1 - column
}

// LoopTangent returns the direction in which a loop leaves the boundary cell
// (row, column). Corners and interior cells are not loop terminals.
func LoopTangent(row, column int) (Direction, error) {
	p := Position{Row: row, Column: column}
	if !p.InBounds() {
		return NoDirection, errors.Wrapf(ErrGeometry, "%v is off the board", p)
	}
	if p.IsCorner() {
		return NoDirection, errors.Wrapf(ErrGeometry, "%v is a corner", p)
	}

	switch {
	case row == 0:
		return Up, nil
	case row == Size-1:
		return Down, nil
	case column == 0:
		return Left, nil
	case column == Size-1:
		return Right, nil
	}
	return NoDirection, errors.Wrapf(ErrGeometry, "%v is not on the boundary", p)
}

// LoopTerminal computes where a pebble leaving (row, column) through its loop
// lands, together with its new direction of travel.
func LoopTerminal(row, column int) (Terminal, error) {
	tangent, err := LoopTangent(row, column)
	if err != nil {
		return Terminal{}, err
	}
	radius := LoopRadius(tangent, row, column)

	var t Terminal
	switch tangent {
	case Up, Down:
		if tangent == Up {
			t.Row = radius
		} else {
			t.Row = Size - 1 - radius
		}
		t.Column = edge(column)
		if t.Column == 0 {
			t.Direction = Right
		} else {
			t.Direction = Left
		}
	case Left, Right:
		t.Row = edge(row)
		if tangent == Left {
			t.Column = radius
		} else {
			t.Column = Size - 1 - radius
		}
		if t.Row == 0 {
			t.Direction = Down
		} else {
			t.Direction = Up
		}
	}
	return t, nil
}

// edge picks the near boundary line for a coordinate.
func edge(coordinate int) int {
	if coordinate < Size/2 {
		return 0
	}
	return Size - 1
}

// LoopRotation returns the arc travelled from the loop terminal start to the
// loop terminal end. It is only used to draw loops.
func LoopRotation(start, end Position) Rotation {
	r := Rotation{
		CenterRow:    Size - 1,
		CenterColumn: Size - 1,
		Radius:       abs(end.Row - start.Row),
	}
	if start.Row == 0 || end.Row == 0 {
		r.CenterRow = 0
	}
	if start.Column == 0 || end.Column == 0 {
		r.CenterColumn = 0
	}

	center := Position{Row: r.CenterRow, Column: r.CenterColumn}
	r.StartAngle = angle(center, start)
	r.EndAngle = angle(center, end)
	return r
}

func angle(from, to Position) float64 {
	switch {
	case from.Row == to.Row && to.Column > from.Column:
		return 0
	case from.Row == to.Row:
		return math.Pi
	case from.Column == to.Column && to.Row > from.Row:
		return math.Pi / 2
	case from.Column == to.Column:
		return 1.5 * math.Pi
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
