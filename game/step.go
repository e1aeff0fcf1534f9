package game

import "github.com/pkg/errors"

// Step is one cell visited by an attack. A step that exits a loop carries
// the direction the pebble travels in afterwards; a straight step has
// Loop false and Direction NoDirection.
type Step struct {
	Position
	Loop      bool      `json:"loop,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

func plainStep(p Position) Step {
	return Step{Position: p, Direction: NoDirection}
}

func loopStep(t Terminal) Step {
	return Step{Position: t.Position, Loop: true, Direction: t.Direction}
}

// nextStraightCell returns the neighbour of (row, column) along d, or false
// when d points off the board.
func nextStraightCell(row, column int, d Direction) (Position, bool) {
	if !d.Valid() {
		return Position{}, false
	}
	next := Position{Row: row + deltas[d][0], Column: column + deltas[d][1]}
	return next, next.InBounds()
}

// FindStep advances an attack by one step: straight ahead when possible,
// otherwise through the loop at the board edge.
func FindStep(row, column int, d Direction) (Step, error) {
	if !d.Valid() {
		return Step{}, errors.Wrapf(ErrUnknownDirection, "%d", d)
	}
	if next, ok := nextStraightCell(row, column, d); ok {
		return plainStep(next), nil
	}

	terminal, err := LoopTerminal(row, column)
	if err != nil {
		return Step{}, errors.WithMessagef(err, "leaving %v %v", Position{Row: row, Column: column}, d)
	}
	return loopStep(terminal), nil
}
