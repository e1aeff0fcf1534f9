// Package communication holds the JSON documents exchanged between the game
// server, its clients and remote agents.
package communication

import (
	"surakarta/game"
	"time"
)

// Update is one committed move together with the board it produced.
type Update struct {
	Move  game.Move      `json:"move"`
	Path  game.Path      `json:"path"`
	State game.Snapshot  `json:"state"`
	Hash  game.StateHash `json:"hash"`
}

// FindMoveRequest is posted to a remote agent's /findmove endpoint. Updates
// lists the moves played since the agent's previous request.
type FindMoveRequest struct {
	State   game.Snapshot `json:"state"`
	Updates []Update      `json:"updates"`
}

// CreateGameRequest optionally carries a custom layout of 36 cells.
type CreateGameRequest struct {
	Cells []game.Pebble `json:"cells,omitempty"`
}

// GameView is the public state of a hosted game.
type GameView struct {
	ID      string        `json:"id"`
	State   game.Snapshot `json:"state"`
	Winner  game.Pebble   `json:"winner"`
	Over    bool          `json:"over"`
	Moves   int           `json:"moves"`
	Created time.Time     `json:"created"`
	Updated time.Time     `json:"updated"`
}

// PlayResponse is returned after a move was committed.
type PlayResponse struct {
	Game GameView  `json:"game"`
	Path game.Path `json:"path"`
}

// PreviewRequest asks for the path of an attack without committing it.
type PreviewRequest struct {
	Row       int            `json:"row"`
	Column    int            `json:"column"`
	Direction game.Direction `json:"direction"`
	Cut       *game.Position `json:"cut,omitempty"`
}

// PreviewResponse reports whether the attack is possible and where it runs.
type PreviewResponse struct {
	Feasible bool      `json:"feasible"`
	Path     game.Path `json:"path"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
