package game

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// StateHash identifies a board position together with the turn.
type StateHash uint64

// Board is the authoritative state of a Surakarta game: occupancy, turn
// counter and pebble counts. It is not safe for concurrent use; explore
// candidate moves on a Clone.
type Board struct {
	cells [Cells]Pebble
	turn  int
	stats [2]PlayerStats

	// turn observers for Red, Black and both sides
	observers [3][]Observer
	gameOver  []GameOverFunc
	loser     Pebble
}

const bothPlayers = 2

// New returns a board with twelve pebbles per side in their starting rows.
// Red occupies rows 0 and 1 and moves first.
func New() *Board {
	b := NewEmpty()
	for i := 0; i < 2*Size; i++ {
		b.cells[i] = Red
	}
	for i := Cells - 2*Size; i < Cells; i++ {
		b.cells[i] = Black
	}
	b.recount()
	return b
}

// NewEmpty returns a board without pebbles, to be populated with Place.
func NewEmpty() *Board {
	b := &Board{loser: Empty}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// Place puts p on (row, column) outside of the move rules, keeping the
// pebble counts consistent.
func (b *Board) Place(row, column int, p Pebble) error {
	pos := Position{Row: row, Column: column}
	if !pos.InBounds() {
		return errors.Wrapf(ErrOutOfBounds, "place at %v", pos)
	}
	if !p.Valid() {
		return errors.Wrapf(ErrInvalidLayout, "pebble value %d at %v", p, pos)
	}
	if old := b.cells[pos.Index()]; old.IsPlayer() {
		b.stats[old].Pebbles--
	}
	b.cells[pos.Index()] = p
	if p.IsPlayer() {
		b.stats[p].Pebbles++
	}
	return nil
}

func (b *Board) recount() {
	b.stats = [2]PlayerStats{}
	for _, p := range b.cells {
		if p.IsPlayer() {
			b.stats[p].Pebbles++
		}
	}
}

// At returns the occupant of (row, column); ok is false off the board.
func (b *Board) At(row, column int) (Pebble, bool) {
	p := Position{Row: row, Column: column}
	if !p.InBounds() {
		return Empty, false
	}
	return b.cells[p.Index()], true
}

// Turn is the number of turns played so far.
func (b *Board) Turn() int { return b.turn }

// TurnPlayer is the side to move: Red on even turns, Black on odd ones.
func (b *Board) TurnPlayer() Pebble {
	return Pebble(b.turn % 2)
}

// Stats returns the statistics of side p.
func (b *Board) Stats(p Pebble) PlayerStats {
	if !p.IsPlayer() {
		return PlayerStats{}
	}
	return b.stats[p]
}

// IsOver reports whether a side has lost its last pebble through a
// committed capture.
func (b *Board) IsOver() bool { return b.loser != Empty }

// Loser is the side that lost its last pebble, or Empty.
func (b *Board) Loser() Pebble { return b.loser }

// Winner is the opponent of the loser, or Empty while the game is on.
func (b *Board) Winner() Pebble { return b.loser.Opponent() }

// ObserveTurns registers o to be notified at the start of every turn.
func (b *Board) ObserveTurns(o Observer) {
	b.observers[bothPlayers] = append(b.observers[bothPlayers], o)
}

// ObservePlayerTurns registers o to be notified when a turn of p begins.
// These observers run after the ones registered with ObserveTurns.
func (b *Board) ObservePlayerTurns(p Pebble, o Observer) {
	if !p.IsPlayer() {
		return
	}
	b.observers[p] = append(b.observers[p], o)
}

// OnGameOver registers fn to receive the losing side when the game ends.
func (b *Board) OnGameOver(fn GameOverFunc) {
	b.gameOver = append(b.gameOver, fn)
}

// Step moves the turn player's pebble from (rs, cs) to (rd, cd). Only the
// ownership of the source and, unless Capturing is given, the emptiness of
// the destination are checked; use SafeStep or Play for full validation.
//
// A committed capture that takes the last pebble of a side ends the game:
// the game-over listeners are called instead of advancing the turn.
func (b *Board) Step(rs, cs, rd, cd int, opts ...Option) error {
	return b.step(Position{Row: rs, Column: cs}, Position{Row: rd, Column: cd}, collect(opts))
}

func (b *Board) step(src, dst Position, o options) error {
	if !src.InBounds() || !dst.InBounds() {
		return errors.Wrapf(ErrOutOfBounds, "step %v to %v", src, dst)
	}
	is, id := src.Index(), dst.Index()
	mover := b.cells[is]

	if mover != b.TurnPlayer() {
		return errors.Wrapf(ErrNotTurnPlayerPebble, "%v holds %v on %v's turn", src, mover, b.TurnPlayer())
	}
	captured := b.cells[id]
	if captured != Empty && (!o.capture || captured == mover) {
		return errors.Wrapf(ErrDestinationOccupied, "%v holds %v", dst, captured)
	}

	b.cells[id] = mover
	b.cells[is] = Empty
	if captured != Empty {
		b.stats[captured].Pebbles--
	}

	if o.noTurn {
		return nil
	}
	if captured != Empty && b.stats[captured].Pebbles <= 0 {
		b.loser = captured
		for _, fn := range b.gameOver {
			fn(captured)
		}
		return nil
	}
	b.turn++
	b.notifyTurn()
	return nil
}

// SafeStep validates the step with ValidateStep before performing it. It
// returns false without touching the board when the step is not adjacent.
func (b *Board) SafeStep(rs, cs, rd, cd int, opts ...Option) (bool, error) {
	if !ValidateStep(rs, cs, rd, cd) {
		return false, nil
	}
	if err := b.Step(rs, cs, rd, cd, opts...); err != nil {
		return false, err
	}
	return true, nil
}

// Traverse performs an attack of the pebble on (row, column) along d,
// optionally stopping on cut. The path is returned whether or not it was
// committed; ok is false when no legal attack exists, in which case the
// board is untouched.
func (b *Board) Traverse(row, column int, d Direction, cut *Position, opts ...Option) (Path, bool, error) {
	o := collect(opts)
	start := Position{Row: row, Column: column}

	if !d.Valid() {
		return Path{}, false, errors.Wrapf(ErrUnknownDirection, "%d", d)
	}
	if !start.InBounds() {
		return Path{}, false, errors.Wrapf(ErrOutOfBounds, "attack from %v", start)
	}
	if !canLoop(start, d) {
		return Path{}, false, errors.Wrapf(ErrCornerLoop, "%v heading %v ends at a corner", start, d)
	}
	if p := b.cells[start.Index()]; p != b.TurnPlayer() {
		return Path{}, false, errors.Wrapf(ErrNotTurnPlayerPebble, "%v holds %v on %v's turn", start, p, b.TurnPlayer())
	}

	record := !(o.dryRun && o.withoutPath)
	path, ok, err := findPath(b, row, column, d, cut, record)
	if err != nil || !ok {
		return Path{}, false, err
	}

	if !o.dryRun {
		last, _ := path.Last()
		commit := options{noTurn: o.noTurn, capture: true}
		if err := b.step(start, last.Position, commit); err != nil {
			return Path{}, false, err
		}
	}
	return path, true, nil
}

// ForEach visits every cell in row-major order.
func (b *Board) ForEach(visit func(p Pebble, row, column int)) {
	for i, p := range b.cells {
		pos := PositionOf(i)
		visit(p, pos.Row, pos.Column)
	}
}

// All iterates over every cell in row-major order.
func (b *Board) All() iter.Seq2[Position, Pebble] {
	return func(yield func(Position, Pebble) bool) {
		for i, p := range b.cells {
			if !yield(PositionOf(i), p) {
				return
			}
		}
	}
}

// CopyTo overwrites the occupancy of dst with this board's.
func (b *Board) CopyTo(dst *Board) {
	dst.cells = b.cells
	dst.recount()
}

// Clone returns an independent board with the same occupancy and turn.
// Observers and game-over listeners are not carried over; pebble counts
// are recomputed from the occupancy.
func (b *Board) Clone() *Board {
	c := &Board{cells: b.cells, turn: b.turn, loser: b.loser}
	c.recount()
	return c
}

// Hash returns the FNV-1a hash of the occupancy and the turn player.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.TurnPlayer()))
	for _, p := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(p))
	}
	return StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, p := range b.cells {
		switch p {
		case Red:
			sb.WriteByte('R')
		case Black:
			sb.WriteByte('B')
		default:
			sb.WriteByte('.')
		}
		if i%Size == Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) notifyTurn() {
	for _, o := range b.observers[bothPlayers] {
		o.OnTurn()
	}
	for _, o := range b.observers[b.TurnPlayer()] {
		o.OnTurn()
	}
}
