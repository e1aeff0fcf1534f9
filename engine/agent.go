package engine

import (
	"context"
	"surakarta/game"
	"sync"

	"golang.org/x/exp/rand"
)

// ScriptedAgent replays a fixed list of moves and then runs out.
type ScriptedAgent struct {
	mu    sync.Mutex
	moves []game.Move
	next  int
}

func NewScriptedAgent(moves []game.Move) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

func (a *ScriptedAgent) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.next >= len(a.moves) {
		return game.Move{}, ErrNoMove
	}
	m := a.moves[a.next].Clone()
	a.next++
	return m, nil
}

// RandomAgent picks uniformly among the legal moves.
type RandomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	a.mu.Lock()
	i := a.rng.Intn(len(moves))
	a.mu.Unlock()
	return moves[i], nil
}

// GreedyAgent plays the legal move whose resulting board scores best for
// the mover. Ties go to the first move in LegalMoves order.
type GreedyAgent struct {
	Evaluate game.Evaluator
}

func NewGreedyAgent(evaluate game.Evaluator) *GreedyAgent {
	if evaluate == nil {
		evaluate = game.EvaluateMaterial
	}
	return &GreedyAgent{Evaluate: evaluate}
}

func (a *GreedyAgent) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	player := b.TurnPlayer()

	best, bestScore := moves[0], -2.0
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}
		next := b.Clone()
		if _, err := next.Play(m); err != nil {
			continue
		}
		if score := a.Evaluate(next, player); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, nil
}
