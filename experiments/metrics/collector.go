package metrics

import (
	"surakarta/game"
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step       int
	Player     game.Pebble
	Move       game.Move
	Capture    bool
	PathLength int // cells visited by an attack
	Loops      int
	Duration   time.Duration // time the agent took to choose
}

type GameMetric struct {
	StartingPlayer game.Pebble
	Winner         game.Pebble // Empty when no side lost its last pebble
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captures       int
}

type Collector interface {
	Start(startingPlayer game.Pebble)
	AddMove(m MoveMetric)
	Complete(winner game.Pebble) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer game.Pebble
	startTime      time.Time
	totalMoves     atomic.Int32
	captures       atomic.Int32

	mu    sync.Mutex
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer game.Pebble) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
	m.totalMoves.Store(0)
	m.captures.Store(0)

	m.mu.Lock()
	m.moves = nil
	m.mu.Unlock()
}

func (m *collector) AddMove(mm MoveMetric) {
	m.totalMoves.Add(1)
	if mm.Capture {
		m.captures.Add(1)
	}
	m.mu.Lock()
	m.moves = append(m.moves, mm)
	m.mu.Unlock()
}

func (m *collector) Complete(winner game.Pebble) (GameMetric, []MoveMetric) {
	end := time.Now()
	m.mu.Lock()
	moves := make([]MoveMetric, len(m.moves))
	copy(moves, m.moves)
	m.mu.Unlock()

	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     int(m.totalMoves.Load()),
		Captures:       int(m.captures.Load()),
	}, moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer game.Pebble) {}
func (m *dummyCollector) AddMove(mm MoveMetric)            {}
func (m *dummyCollector) Complete(winner game.Pebble) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner}, nil
}
