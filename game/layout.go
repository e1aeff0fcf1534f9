package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// FromState builds a board from 36 occupancy values in row-major order. The
// pebble counts are derived from the values; the turn starts at zero.
func FromState(states []Pebble) (*Board, error) {
	if len(states) != Cells {
		return nil, errors.Wrapf(ErrInvalidLayout, "got %d cells, want %d", len(states), Cells)
	}

	var errs error
	b := NewEmpty()
	for i, p := range states {
		if !p.Valid() {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidLayout, "pebble value %d at %v", p, PositionOf(i)))
			continue
		}
		b.cells[i] = p
	}
	if errs != nil {
		return nil, errs
	}
	b.recount()
	return b, nil
}

// Placement is an instruction for FromPlacements: put Pebble on (Row,
// Column), or on every combination of Rows and Columns when either is set.
// A placement of Empty punches a hole into an earlier block.
type Placement struct {
	Pebble  Pebble
	Row     int
	Column  int
	Rows    []int
	Columns []int
}

// FromPlacements builds a board by applying the placements in order to an
// empty board. Every invalid placement is reported.
func FromPlacements(placements ...Placement) (*Board, error) {
	var errs error
	b := NewEmpty()

	for _, pl := range placements {
		rows, columns := pl.Rows, pl.Columns
		if len(rows) == 0 {
			rows = []int{pl.Row}
		}
		if len(columns) == 0 {
			columns = []int{pl.Column}
		}
		for _, r := range rows {
			for _, c := range columns {
				if err := b.Place(r, c, pl.Pebble); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

// Snapshot is a plain copy of a board's state, suitable for encoding.
type Snapshot struct {
	Cells  []Pebble `json:"cells"`
	Turn   int      `json:"turn"`
	Player Pebble   `json:"player"`
	Red    int      `json:"red"`
	Black  int      `json:"black"`
	Loser  Pebble   `json:"loser"`
}

// Snapshot copies the board's state.
func (b *Board) Snapshot() Snapshot {
	cells := make([]Pebble, Cells)
	copy(cells, b.cells[:])
	return Snapshot{
		Cells:  cells,
		Turn:   b.turn,
		Player: b.TurnPlayer(),
		Red:    b.stats[Red].Pebbles,
		Black:  b.stats[Black].Pebbles,
		Loser:  b.loser,
	}
}

// FromSnapshot rebuilds a board from a snapshot. Pebble counts are
// recomputed from the cells rather than trusted.
func FromSnapshot(s Snapshot) (*Board, error) {
	b, err := FromState(s.Cells)
	if err != nil {
		return nil, err
	}
	if s.Turn < 0 {
		return nil, errors.Wrapf(ErrInvalidLayout, "negative turn %d", s.Turn)
	}
	b.turn = s.Turn
	if s.Loser.IsPlayer() {
		b.loser = s.Loser
	}
	return b, nil
}
