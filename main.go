package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"surakarta/communication/client"
	"surakarta/communication/server"
	"surakarta/config"
	"surakarta/engine"
	"surakarta/experiments"
	"surakarta/game"
	"surakarta/gamemaster"
	"surakarta/player"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	configPath := flag.String("config", "", "Config file to use instead of the XDG one")
	mode := flag.String("mode", "serve", "serve, replay or play")
	addr := flag.String("addr", cfg.Server.Addr, "Listen address in serve mode")
	records := flag.String("records", cfg.Replay.RecordsDir, "Folder for replay records")
	goroutines := flag.Int("goroutines", cfg.Replay.Goroutines, "Number of goroutines for parallel replays")
	maxTurns := flag.Int("max-turns", cfg.Replay.MaxTurns, "Turn limit per replayed game")
	logLevel := flag.String("log-level", cfg.Log.Level, "Log level")
	pretty := flag.Bool("pretty", cfg.Log.Pretty, "Human readable console logs")
	serverURL := flag.String("server", "http://localhost:8080", "Game server in play mode")
	gameID := flag.String("game", "", "Game to join in play mode; empty creates one")
	side := flag.String("side", "red", "Side to play in play mode")
	agentName := flag.String("agent", "greedy", "random or greedy")
	flag.Parse()

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// explicit flags still win over the file
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		*addr = choose(set, "addr", *addr, cfg.Server.Addr)
		*records = choose(set, "records", *records, cfg.Replay.RecordsDir)
		*goroutines = choose(set, "goroutines", *goroutines, cfg.Replay.Goroutines)
		*maxTurns = choose(set, "max-turns", *maxTurns, cfg.Replay.MaxTurns)
		*logLevel = choose(set, "log-level", *logLevel, cfg.Log.Level)
		*pretty = choose(set, "pretty", *pretty, cfg.Log.Pretty)
	}
	setupLogging(*logLevel, *pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "serve":
		err = serve(ctx, *addr, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	case "replay":
		err = replay(ctx, flag.Args(), *goroutines, *maxTurns, *records)
	case "play":
		err = play(ctx, *serverURL, *gameID, *side, *agentName)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func choose[T any](set map[string]bool, name string, flagValue, fileValue T) T {
	if set[name] {
		return flagValue
	}
	return fileValue
}

func setupLogging(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func serve(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: server.NewServer(gamemaster.NewService()),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func replay(ctx context.Context, paths []string, goroutines, maxTurns int, records string) error {
	if len(paths) == 0 {
		return errors.New("replay needs at least one script file")
	}
	scripts := make([]experiments.Script, 0, len(paths))
	for _, path := range paths {
		s, err := experiments.LoadScript(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	dir, err := experiments.RunAndStore(ctx, scripts, goroutines, maxTurns, records)
	if dir != "" {
		log.Info().Msgf("records written to %s", dir)
	}
	return err
}

func play(ctx context.Context, serverURL, gameID, side, agentName string) error {
	var pebble game.Pebble
	switch side {
	case "red":
		pebble = game.Red
	case "black":
		pebble = game.Black
	default:
		return fmt.Errorf("unknown side %q", side)
	}

	var agent engine.Agent
	switch agentName {
	case "random":
		agent = engine.NewRandomAgent(uint64(time.Now().UnixNano()))
	case "greedy":
		agent = engine.NewGreedyAgent(game.EvaluateThreats)
	default:
		return fmt.Errorf("unknown agent %q", agentName)
	}

	c := client.NewClient(serverURL, &http.Client{Timeout: 10 * time.Second})
	if gameID == "" {
		view, err := c.CreateGame(ctx, nil)
		if err != nil {
			return err
		}
		gameID = view.ID
		log.Info().Msgf("created game %s", gameID)
	}

	winner, err := player.NewPlayer(pebble, gameID, c, agent).Play(ctx)
	if err != nil {
		return err
	}
	log.Info().Msgf("game %s won by %s", gameID, winner)
	return nil
}
