// Package player plays one side of a game hosted by the server.
package player

import (
	"context"
	"fmt"
	"surakarta/communication"
	"surakarta/communication/client"
	"surakarta/engine"
	"surakarta/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Player represents a game player.
type Player struct {
	Side   game.Pebble
	GameID string
	Client *client.Client
	Agent  engine.Agent
	// Poll is the wait between state checks while the opponent moves.
	Poll time.Duration

	local *game.Board
}

// NewPlayer creates a new Player instance.
func NewPlayer(side game.Pebble, gameID string, c *client.Client, agent engine.Agent) *Player {
	return &Player{
		Side:   side,
		GameID: gameID,
		Client: c,
		Agent:  agent,
		Poll:   100 * time.Millisecond,
	}
}

// Play takes the player's turns until the game is over and returns the
// winner. engine.ErrNoMove is returned when the agent gives up.
func (p *Player) Play(ctx context.Context) (game.Pebble, error) {
	for {
		view, err := p.SyncGameState(ctx)
		if err != nil {
			return game.Empty, err
		}
		if view.Over {
			log.Info().Msgf("%s: game %s over, winner %s", p.Side, p.GameID, view.Winner)
			return view.Winner, nil
		}

		if p.local.TurnPlayer() != p.Side {
			select {
			case <-ctx.Done():
				return game.Empty, ctx.Err()
			case <-time.After(p.Poll):
			}
			continue
		}

		move, err := p.TakeTurn(ctx)
		if err != nil {
			return game.Empty, err
		}
		if _, err := p.Client.Play(ctx, p.GameID, move); err != nil {
			return game.Empty, fmt.Errorf("%s failed to play %v: %w", p.Side, move, err)
		}
		log.Debug().Msgf("%s played %v", p.Side, move)
	}
}

// SyncGameState updates the player's local board from the server.
func (p *Player) SyncGameState(ctx context.Context) (communication.GameView, error) {
	view, err := p.Client.GetGame(ctx, p.GameID)
	if err != nil {
		return communication.GameView{}, err
	}
	b, err := game.FromSnapshot(view.State)
	if err != nil {
		return communication.GameView{}, err
	}
	p.local = b
	return view, nil
}

// TakeTurn asks the agent for a move on the local board.
func (p *Player) TakeTurn(ctx context.Context) (game.Move, error) {
	if p.local == nil {
		return game.Move{}, fmt.Errorf("%s has not synced the game yet", p.Side)
	}
	return p.Agent.FindMove(ctx, p.local.Clone())
}
