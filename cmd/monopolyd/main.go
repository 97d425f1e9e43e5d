// Command monopolyd hosts one game over HTTP. The banker posts each roll to
// /roll-dice; spectators follow along on /ws.
//
//	monopolyd                    serve the game configured in the environment
//	monopolyd hash-password PW   print a bcrypt hash for BANKER_PASSWORD_HASH
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jason-s-yu/monopoly/engine"
	"github.com/jason-s-yu/monopoly/internal/auth"
	"github.com/jason-s-yu/monopoly/internal/cache"
	"github.com/jason-s-yu/monopoly/internal/config"
	"github.com/jason-s-yu/monopoly/internal/database"
	"github.com/jason-s-yu/monopoly/internal/game"
	"github.com/jason-s-yu/monopoly/internal/logging"
	"github.com/jason-s-yu/monopoly/internal/publish"
	"github.com/jason-s-yu/monopoly/internal/server"
	"golang.org/x/sync/errgroup"
)

const tokenTTL = 12 * time.Hour

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) > 0 {
		if args[0] != "hash-password" || len(args) != 2 {
			return fmt.Errorf("usage: monopolyd [hash-password PASSWORD]")
		}
		hash, err := auth.HashPassword(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, hash)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, err := logging.New(stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if len(cfg.Players) < engine.MinPlayers {
		return fmt.Errorf("MONOPOLY_PLAYERS must name %d to %d players", engine.MinPlayers, engine.MaxPlayers)
	}

	// --- Redis ---
	if cfg.RedisURL != "" {
		if err := cache.Connect(ctx, cfg.RedisURL); err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer cache.Close()
		log.Info("connected to redis")
	}

	// --- Postgres ---
	if cfg.DatabaseURL != "" {
		if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		log.Info("connected to postgres")
	}

	// --- Game ---
	var extra []engine.Observer
	if cfg.PublishPath != "" {
		extra = append(extra, publish.New(cfg.PublishPath, log))
	}
	rng, seed := cfg.Rand()
	session, err := game.NewSession(cfg.Players, cfg.Rules(), rng, log.WithField("seed", seed), extra...)
	if err != nil {
		return err
	}
	authn := auth.New(cfg.JWTSecret, cfg.BankerPasswordHash, tokenTTL)
	if !authn.Enabled() {
		log.Warn("BANKER_PASSWORD_HASH is unset, anyone can roll the dice")
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, log, session, authn)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)
	session.Start(gctx)

	g.Go(func() error {
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	g.Go(func() error {
		err := session.Wait()
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game %s: %w", session.ID, err)
		}
		log.WithField("game", session.ID).Info("game finished, still serving state")
		return nil
	})

	return g.Wait()
}
