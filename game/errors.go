package game

import "github.com/pkg/errors"

// Errors returned by board operations. Callers match them with errors.Is;
// the returned values are usually wrapped with the offending coordinates.
var (
	ErrNotTurnPlayerPebble    = errors.New("not the turn player's pebble")
	ErrDestinationOccupied    = errors.New("destination is already filled")
	ErrCornerLoop             = errors.New("cannot loop from a corner in this orientation")
	ErrGeometry               = errors.New("not a loop terminal")
	ErrInvalidDirectionVector = errors.New("displacement is not a single orthogonal direction")
	ErrUnknownDirection       = errors.New("unknown direction")
	ErrOutOfBounds            = errors.New("position out of bounds")
	ErrInvalidLayout          = errors.New("invalid board layout")
	ErrIllegalMove            = errors.New("illegal move")
)
