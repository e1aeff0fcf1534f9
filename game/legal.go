package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// LegalMoves returns the turn player's simple moves onto empty neighbours
// and every capturing attack, ordered by source, attack flag, direction and
// destination. Non-capturing attacks onto a chosen cut are legal too but are
// not enumerated.
func (b *Board) LegalMoves() []Move {
	if b.IsOver() {
		return nil
	}
	player := b.TurnPlayer()
	var moves []Move

	for i, p := range b.cells {
		if p != player {
			continue
		}
		src := PositionOf(i)

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				dst := Position{Row: src.Row + dr, Column: src.Column + dc}
				if dst == src || !ValidateStep(src.Row, src.Column, dst.Row, dst.Column) {
					continue
				}
				if b.cells[dst.Index()] == Empty {
					moves = append(moves, NewMove(src, dst))
				}
			}
		}

		for _, d := range Directions {
			if !canLoop(src, d) {
				continue
			}
			path, ok, err := FindPath(b, src.Row, src.Column, d, nil)
			if err != nil || !ok || !path.IsCapture {
				continue
			}
			last, _ := path.Last()
			moves = append(moves, NewAttack(src, last.Position, d))
		}
	}

	slices.SortFunc(moves, compareMoves)
	return moves
}

// IsLegal reports whether m can be played by the turn player right now.
func (b *Board) IsLegal(m Move) bool {
	_, err := b.Clone().Play(m)
	return err == nil
}

// Play validates the move descriptor and commits it as a turn. An attack
// must end exactly on the move's destination, either by capturing there or
// by stopping on it as an empty cut.
func (b *Board) Play(m Move) (Path, error) {
	if b.IsOver() {
		return Path{}, errors.Wrap(ErrIllegalMove, "game is over")
	}
	src, dst := m.Source(), m.Destination()

	if !m.IsAttack {
		if src == dst || !ValidateStep(src.Row, src.Column, dst.Row, dst.Column) {
			return Path{}, errors.Wrapf(ErrIllegalMove, "%v", m)
		}
		if err := b.step(src, dst, options{}); err != nil {
			return Path{}, err
		}
		return Path{}, nil
	}

	if !dst.InBounds() {
		return Path{}, errors.Wrapf(ErrOutOfBounds, "%v", m)
	}
	path, ok, err := b.Traverse(src.Row, src.Column, m.Direction, &dst, DryRun())
	if err != nil {
		return Path{}, err
	}
	last, _ := path.Last()
	if !ok || last.Position != dst {
		return Path{}, errors.Wrapf(ErrIllegalMove, "%v", m)
	}
	if err := b.step(src, dst, options{capture: true}); err != nil {
		return Path{}, err
	}
	return path, nil
}

// canLoop reports whether an attack may set off from p along d without
// running into a corner.
func canLoop(p Position, d Direction) bool {
	if d.IsHorizontal() {
		return p.Row != 0 && p.Row != Size-1
	}
	return p.Column != 0 && p.Column != Size-1
}

func compareMoves(a, b Move) int {
	keys := [...][2]int{
		{a.Source().Index(), b.Source().Index()},
		{boolToInt(a.IsAttack), boolToInt(b.IsAttack)},
		{int(a.Direction), int(b.Direction)},
		{a.Destination().Index(), b.Destination().Index()},
	}
	for _, k := range keys {
		if k[0] != k[1] {
			return k[0] - k[1]
		}
	}
	return 0
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
