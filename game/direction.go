package game

import (
	"github.com/pkg/errors"
)

// Direction is one of the four cardinal directions an attack can travel in.
type Direction int8

const (
	NoDirection Direction = iota // direction of a non-attack move
	Left
	Up
	Right
	Down
)

// Directions lists the four cardinal directions.
var Directions = [4]Direction{Left, Up, Right, Down}

// (dr, dc) per direction
var deltas = [5][2]int{
	Left:  {0, -1},
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
}

var directionNames = [5]string{
	Left:  "left",
	Up:    "up",
	Right: "right",
	Down:  "down",
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// MarshalText encodes the direction by name; NoDirection encodes as "".
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return []byte{}, nil
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection is the inverse of Direction.String. The empty string and
// "none" parse as NoDirection.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "none":
		return NoDirection, nil
	}
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return NoDirection, errors.Wrapf(ErrUnknownDirection, "%q", s)
}

// DirectionOf derives the direction of the straight displacement from start
// to end.
func DirectionOf(start, end Position) (Direction, error) {
	dr := end.Row - start.Row
	dc := end.Column - start.Column

	if dr*dc != 0 {
		return NoDirection, errors.Wrapf(ErrInvalidDirectionVector, "%v to %v", start, end)
	}
	switch {
	case dr > 0:
		return Down, nil
	case dr < 0:
		return Up, nil
	case dc > 0:
		return Right, nil
	case dc < 0:
		return Left, nil
	}
	return NoDirection, errors.Wrapf(ErrInvalidDirectionVector, "zero displacement at %v", start)
}
