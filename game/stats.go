package game

// PlayerStats holds the live statistics of one side.
type PlayerStats struct {
	Pebbles int `json:"pebbles"` // pebbles still on the board
}

// Observer is notified when a turn begins.
type Observer interface {
	OnTurn()
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func()

func (f ObserverFunc) OnTurn() { f() }

// GameOverFunc receives the side that lost its last pebble.
type GameOverFunc func(loser Pebble)
