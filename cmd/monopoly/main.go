// Command monopoly plays a game at the terminal. Players type in the dice they
// rolled and answer the engine's questions.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jason-s-yu/monopoly/engine"
	"github.com/jason-s-yu/monopoly/internal/config"
	"github.com/jason-s-yu/monopoly/internal/console"
	"github.com/jason-s-yu/monopoly/internal/logging"
	"github.com/jason-s-yu/monopoly/internal/publish"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	dialog := console.NewDialog(stdin, stdout)
	names := cfg.Players
	if len(names) == 0 {
		if names, err = dialog.AskPlayers(ctx); err != nil {
			return fmt.Errorf("reading players: %w", err)
		}
	}
	if len(names) < engine.MinPlayers || len(names) > engine.MaxPlayers {
		return fmt.Errorf("need %d to %d players, got %d", engine.MinPlayers, engine.MaxPlayers, len(names))
	}

	rng, seed := cfg.Rand()
	g, err := engine.NewGame(names, cfg.Rules(), rng)
	if err != nil {
		return err
	}
	g.Log = log.WithField("seed", seed)

	observers := engine.Observers{console.Summary{W: stdout}}
	if cfg.PublishPath != "" {
		observers = append(observers, publish.New(cfg.PublishPath, log))
	}
	g.Observer = observers

	log.WithField("players", names).Info("game started")
	err = g.Run(ctx, dialog)
	switch {
	case err == nil, errors.Is(err, console.ErrClosed), errors.Is(err, context.Canceled):
	default:
		return err
	}

	if w, ok := g.Winner(); ok {
		fmt.Fprintf(stdout, "%s wins!\n", g.Players[w].Name)
	}
	fmt.Fprintln(stdout, "Final standings:")
	for rank, idx := range g.Standings() {
		fmt.Fprintf(stdout, "%d. %s ($%d)\n", rank+1, g.Players[idx].Name, g.NetWorth(idx))
	}
	return nil
}
