// Package gamemaster hosts Surakarta games in memory and fans their moves
// out to subscribers.
package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"surakarta/communication"
	"surakarta/game"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrGameOver = errors.New("game is over - no moves allowed")
)

type session struct {
	id      string
	board   *game.Board
	moves   int
	created time.Time
	updated time.Time
	subs    map[*subscriber]struct{}
}

type subscriber struct {
	ch        chan communication.Update
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages hosted games. Every board is only touched under the
// service lock.
type Service struct {
	mu    sync.Mutex
	games map[string]*session
	// buffered updates per subscriber before it is dropped
	buffer int
}

func NewService() *Service {
	return &Service{
		games:  make(map[string]*session),
		buffer: 16,
	}
}

// CreateGame starts a game from the initial layout, or from cells when
// given (36 values, row-major, Red to move).
func (s *Service) CreateGame(cells []game.Pebble) (communication.GameView, error) {
	b := game.New()
	if cells != nil {
		var err error
		b, err = game.FromState(cells)
		if err != nil {
			return communication.GameView{}, err
		}
	}

	now := time.Now()
	gs := &session{
		id:      uuid.NewString(),
		board:   b,
		created: now,
		updated: now,
		subs:    make(map[*subscriber]struct{}),
	}
	b.OnGameOver(func(loser game.Pebble) {
		log.Info().Msgf("game %s: %s lost its last pebble after %d moves", gs.id, loser, gs.moves+1)
	})

	s.mu.Lock()
	s.games[gs.id] = gs
	s.mu.Unlock()

	log.Info().Msgf("created game %s", gs.id)
	return gs.view(), nil
}

func (s *Service) Get(id string) (communication.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return communication.GameView{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return gs.view(), nil
}

// List returns every game, oldest first.
func (s *Service) List() []communication.GameView {
	s.mu.Lock()
	views := make([]communication.GameView, 0, len(s.games))
	for _, gs := range s.games {
		views = append(views, gs.view())
	}
	s.mu.Unlock()

	slices.SortFunc(views, func(a, b communication.GameView) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return views
}

func (s *Service) LegalMoves(id string) ([]game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return gs.board.LegalMoves(), nil
}

// Play commits move for the side to move and broadcasts the update.
func (s *Service) Play(id string, move game.Move) (communication.GameView, game.Path, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return communication.GameView{}, game.Path{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if gs.board.IsOver() {
		s.mu.Unlock()
		return communication.GameView{}, game.Path{}, ErrGameOver
	}

	path, err := gs.board.Play(move)
	if err != nil {
		s.mu.Unlock()
		return communication.GameView{}, game.Path{}, err
	}
	gs.moves++
	gs.updated = time.Now()

	view := gs.view()
	u := communication.Update{
		Move:  move,
		Path:  path,
		State: view.State,
		Hash:  gs.board.Hash(),
	}
	over := gs.board.IsOver()

	// fan out without blocking; slow subscribers are dropped and everyone
	// is let go once the game has ended
	for sub := range gs.subs {
		dropped := false
		select {
		case sub.ch <- u:
		default:
			log.Warn().Msgf("game %s: dropping slow subscriber", id)
			dropped = true
		}
		if dropped || over {
			delete(gs.subs, sub)
			sub.close()
		}
	}
	s.mu.Unlock()

	return view, path, nil
}

// Preview computes the attack from (row, column) along d on a copy of the
// board. Only the side to move may attack.
func (s *Service) Preview(id string, row, column int, d game.Direction, cut *game.Position) (game.Path, bool, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return game.Path{}, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b := gs.board.Clone()
	s.mu.Unlock()

	return b.Traverse(row, column, d, cut, game.DryRun())
}

// Subscribe registers for the updates of game id. The channel is closed
// when ctx is done, the returned func is called, the subscriber falls
// behind, or the game ends.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan communication.Update, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	sub := &subscriber{ch: make(chan communication.Update, s.buffer)}
	if gs.board.IsOver() {
		sub.close()
		return sub.ch, func() {}, nil
	}
	gs.subs[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			delete(gs.subs, sub)
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub, nil
}

func (gs *session) view() communication.GameView {
	return communication.GameView{
		ID:      gs.id,
		State:   gs.board.Snapshot(),
		Winner:  gs.board.Winner(),
		Over:    gs.board.IsOver(),
		Moves:   gs.moves,
		Created: gs.created,
		Updated: gs.updated,
	}
}
