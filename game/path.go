package game

import "github.com/pkg/errors"

// Path is the ordered sequence of cells an attack visits. The last step is
// where the attacking pebble lands.
type Path struct {
	Steps []Step `json:"steps"`
	// IsCapture is false only when the attack stopped on an empty cut.
	IsCapture bool `json:"is_capture"`
}

// Last returns the landing step; ok is false for an empty path.
func (p Path) Last() (Step, bool) {
	if len(p.Steps) == 0 {
		return Step{}, false
	}
	return p.Steps[len(p.Steps)-1], true
}

// Loops counts the loop crossings on the path.
func (p Path) Loops() int {
	n := 0
	for _, s := range p.Steps {
		if s.Loop {
			n++
		}
	}
	return n
}

// FindPath computes the attack of the pebble on (row, column) setting off
// along d. If cut is non-nil the attack may stop there even when it is
// empty. The boolean result is false when no legal attack exists: the path
// would cross its own origin twice, run into a pebble of its own side, or
// never ride a loop.
func FindPath(b *Board, row, column int, d Direction, cut *Position) (Path, bool, error) {
	return findPath(b, row, column, d, cut, true)
}

// CanAttack runs the same search as FindPath without building the path.
func CanAttack(b *Board, row, column int, d Direction, cut *Position) (bool, error) {
	_, ok, err := findPath(b, row, column, d, cut, false)
	return ok, err
}

func findPath(b *Board, row, column int, d Direction, cut *Position, record bool) (Path, bool, error) {
	start := Position{Row: row, Column: column}
	if !start.InBounds() {
		return Path{}, false, errors.Wrapf(ErrOutOfBounds, "attack from %v", start)
	}
	pebble := b.cells[start.Index()]
	if !pebble.IsPlayer() {
		return Path{}, false, nil
	}

	var steps []Step
	heading := d
	selfTouch := 0
	loops := 0
	cutFound := false

	for {
		next, err := FindStep(row, column, heading)
		if err != nil {
			return Path{}, false, errors.WithMessagef(err, "attack from %v heading %v", start, d)
		}
		row, column = next.Row, next.Column
		if next.Loop {
			heading = next.Direction
			loops++
		}

		// Passing over the origin once is fine; the second time proves
		// the path cycles without ever resolving.
		self := false
		if next.Position == start {
			selfTouch++
			if selfTouch > 1 {
				return Path{}, false, nil
			}
			self = true
		}

		occupant := b.cells[next.Index()]
		if !self && occupant == pebble {
			return Path{}, false, nil
		}
		if record {
			steps = append(steps, next)
		}

		if !self && cut != nil && *cut == next.Position {
			cutFound = occupant == Empty
			break
		}
		if !self && occupant != Empty {
			break
		}
	}

	if loops == 0 {
		return Path{}, false, nil
	}
	return Path{Steps: steps, IsCapture: !cutFound}, true, nil
}
