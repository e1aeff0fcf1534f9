// Package experiments replays scripted games concurrently and stores their
// records as CSV.
package experiments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"surakarta/engine"
	"surakarta/experiments/metrics"
	"surakarta/game"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

// Script describes a game to replay: an optional starting layout, the
// moves of both sides in turn order and, when Seed is set, random play
// after the moves run out.
type Script struct {
	Name  string        `json:"name"`
	Cells []game.Pebble `json:"cells,omitempty"`
	Moves []game.Move   `json:"moves"`
	Seed  *uint64       `json:"seed,omitempty"`
}

// Outcome is the result of replaying one script. Err is set when the
// replay could not run to completion.
type Outcome struct {
	Script string
	Result engine.Result
	Err    error
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// RunReplays replays every script on its own board, spreading them over
// the given number of goroutines. Outcomes are returned in script order;
// the error aggregates every failed replay.
func RunReplays(ctx context.Context, scripts []Script, goroutines, maxTurns int) ([]Outcome, error) {
	if goroutines < 1 {
		goroutines = 1
	}
	task := make(chan int, len(scripts))
	for i := range scripts {
		task <- i
	}
	close(task)

	outcomes := make([]Outcome, len(scripts))
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				outcomes[i] = replay(ctx, scripts[i], maxTurns)
			}
		}()
	}
	wg.Wait()

	var errs error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("script %s: %w", o.Script, o.Err))
		}
	}
	return outcomes, errs
}

func replay(ctx context.Context, s Script, maxTurns int) Outcome {
	opts := []engine.Option{engine.WithLabel(s.Name)}
	if maxTurns > 0 {
		opts = append(opts, engine.WithMaxTurns(maxTurns))
	}
	if s.Cells != nil {
		b, err := game.FromState(s.Cells)
		if err != nil {
			return Outcome{Script: s.Name, Err: err}
		}
		opts = append(opts, engine.WithBoard(b))
	}

	// one agent serves both sides since the moves are in turn order
	var agent engine.Agent = engine.NewScriptedAgent(s.Moves)
	if s.Seed != nil {
		agent = &fallbackAgent{first: agent, then: engine.NewRandomAgent(*s.Seed)}
	}

	result, err := engine.NewEngine(agent, agent, opts...).Run(ctx)
	return Outcome{Script: s.Name, Result: result, Err: err}
}

// fallbackAgent asks then once first has no move left.
type fallbackAgent struct {
	first, then engine.Agent
}

func (a *fallbackAgent) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	m, err := a.first.FindMove(ctx, b)
	if errors.Is(err, engine.ErrNoMove) {
		return a.then.FindMove(ctx, b)
	}
	return m, err
}

// RunAndStore replays the scripts and writes game and move records into a
// timestamped folder under root, whose path is returned. Failed replays
// are logged and left out of the records.
func RunAndStore(ctx context.Context, scripts []Script, goroutines, maxTurns int, root string) (string, error) {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return "", err
	}

	log.Info().Msgf("replaying %d scripts on %d goroutines...", len(scripts), goroutines)
	outcomes, runErr := RunReplays(ctx, scripts, goroutines, maxTurns)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	count := 0
	for _, o := range outcomes {
		if o.Err != nil {
			log.Error().Err(o.Err).Msgf("replay of %s failed", o.Script)
			continue
		}
		count++
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         count,
			Script:     o.Script,
			GameMetric: o.Result.Game,
		})
		for _, mm := range o.Result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       count,
				MoveMetric: mm,
			})
		}
		log.Info().Msgf("completed %s after %d moves with winner: %s", o.Script, o.Result.Game.TotalMoves, o.Result.Winner)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), runErr
}
