// Package game implements the Surakarta board: loop geometry, the attack
// path finder and the board state machine that commits moves.
package game

const (
	Size  = 6           // rows and columns
	Cells = Size * Size // occupancy slots
)

// Pebble is the occupant of a cell.
type Pebble int8

const (
	Empty Pebble = -1
	Red   Pebble = 0 // moves first
	Black Pebble = 1
)

// Players lists the two sides in turn order.
var Players = [2]Pebble{Red, Black}

func (p Pebble) String() string {
	switch p {
	case Red:
		return "red"
	case Black:
		return "black"
	case Empty:
		return "empty"
	default:
		return "invalid"
	}
}

// Opponent returns the other side; Empty has no opponent.
func (p Pebble) Opponent() Pebble {
	switch p {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return Empty
	}
}

// Valid reports whether p is one of Empty, Red or Black.
func (p Pebble) Valid() bool {
	return p == Empty || p == Red || p == Black
}

// IsPlayer reports whether p is Red or Black.
func (p Pebble) IsPlayer() bool {
	return p == Red || p == Black
}
