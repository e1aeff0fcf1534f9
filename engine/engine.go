package engine

import (
	"context"
	"errors"
	"surakarta/communication"
	"surakarta/experiments/metrics"
	"surakarta/game"
)

// MaxTurns caps a game when no turn limit is configured.
const MaxTurns = 300

// ErrNoMove is returned by an agent that has nothing left to play. The
// engine stops the game without a winner.
var ErrNoMove = errors.New("agent has no move")

// Agent chooses the next move for the side to move. The board is a clone;
// agents may explore it freely.
type Agent interface {
	FindMove(ctx context.Context, b *game.Board) (game.Move, error)
}

// UpdateReceiver is implemented by agents that want to hear about every
// committed move, their own included.
type UpdateReceiver interface {
	Receive(u communication.Update)
}

// Result summarises a finished or interrupted game.
type Result struct {
	Winner game.Pebble
	Loser  game.Pebble
	Turns  int
	// Stalled is set when the side to move had no move
	Stalled bool
	Board   *game.Board
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}
