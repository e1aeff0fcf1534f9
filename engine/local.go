package engine

import (
	"context"
	"errors"
	"fmt"
	"surakarta/communication"
	"surakarta/experiments/metrics"
	"surakarta/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine plays one game between two agents on a board it owns.
type Engine struct {
	board     *game.Board
	agents    [2]Agent
	maxTurns  int
	collector metrics.Collector
	label     string
}

type Option func(*Engine)

// WithBoard starts the game from b instead of the initial layout.
func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		e.board = b
	}
}

func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		e.maxTurns = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// WithLabel tags the engine's log lines, typically with a game name.
func WithLabel(label string) Option {
	return func(e *Engine) {
		e.label = label
	}
}

func NewEngine(red, black Agent, opts ...Option) *Engine {
	e := &Engine{
		agents:   [2]Agent{red, black},
		maxTurns: MaxTurns,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = game.New()
	}
	if e.collector == nil {
		e.collector = metrics.NewCollector()
	}
	return e
}

// Board returns the live board. It must not be touched while Run is active.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Run plays until a side loses its last pebble, the turn cap is reached,
// the side to move has no move, or ctx is done. A move the board rejects
// aborts the game with an error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	logger := log.With().Str("game", e.label).Logger()

	e.board.ObserveTurns(game.ObserverFunc(func() {
		logger.Debug().Msgf("turn %d: %s to move", e.board.Turn(), e.board.TurnPlayer())
	}))
	e.board.OnGameOver(func(loser game.Pebble) {
		logger.Info().Msgf("%s lost its last pebble", loser)
	})

	e.collector.Start(e.board.TurnPlayer())
	logger.Info().Msgf("player %s is starting", e.board.TurnPlayer())

	result := Result{Board: e.board}
	moves := 0
	for !e.board.IsOver() && moves < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return e.finish(result), err
		}
		player := e.board.TurnPlayer()

		start := time.Now()
		move, err := e.agents[player].FindMove(ctx, e.board.Clone())
		if errors.Is(err, ErrNoMove) {
			logger.Info().Msgf("%s has no move left", player)
			result.Stalled = true
			break
		}
		if err != nil {
			return e.finish(result), fmt.Errorf("%s agent failed: %w", player, err)
		}
		elapsed := time.Since(start)

		path, err := e.board.Play(move)
		if err != nil {
			return e.finish(result), fmt.Errorf("%s played %v: %w", player, move, err)
		}
		moves++

		e.collector.AddMove(metrics.MoveMetric{
			Step:       moves,
			Player:     player,
			Move:       move,
			Capture:    move.IsAttack && path.IsCapture,
			PathLength: len(path.Steps),
			Loops:      path.Loops(),
			Duration:   elapsed,
		})
		e.broadcast(communication.Update{
			Move:  move,
			Path:  path,
			State: e.board.Snapshot(),
			Hash:  e.board.Hash(),
		})
	}

	if !e.board.IsOver() && !result.Stalled {
		logger.Info().Msgf("stopped after %d moves (no winner yet)", moves)
	}
	return e.finish(result), nil
}

func (e *Engine) finish(r Result) Result {
	r.Winner = e.board.Winner()
	r.Loser = e.board.Loser()
	r.Turns = e.board.Turn()
	r.Game, r.Moves = e.collector.Complete(r.Winner)
	return r
}

func (e *Engine) broadcast(u communication.Update) {
	seen := map[Agent]bool{}
	for _, a := range e.agents {
		if seen[a] {
			continue
		}
		seen[a] = true
		if r, ok := a.(UpdateReceiver); ok {
			r.Receive(u)
		}
	}
}
