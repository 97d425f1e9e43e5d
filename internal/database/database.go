// internal/database/database.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the shared connection pool. Nil when Postgres is not configured.
var DB *pgxpool.Pool

// ErrNotConfigured is returned by every helper while DB is nil.
var ErrNotConfigured = errors.New("postgres not configured")

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id         UUID PRIMARY KEY,
	players    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	ended_at   TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS game_snapshots (
	game_id    UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
	turn       INTEGER NOT NULL,
	state      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (game_id, turn)
);
`

// Connect opens a pool for url, pings it and installs it as DB.
func Connect(ctx context.Context, url string) error {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return fmt.Errorf("creating pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("pinging postgres: %w", err)
	}
	DB = pool
	return nil
}

// Close closes DB if it is open.
func Close() {
	if DB != nil {
		DB.Close()
		DB = nil
	}
}

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return ErrNotConfigured
	}
	if _, err := DB.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// CreateGame records a new game and its player names.
func CreateGame(ctx context.Context, gameID uuid.UUID, players []string) error {
	if DB == nil {
		return ErrNotConfigured
	}
	names, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("marshal players: %w", err)
	}
	_, err = DB.Exec(ctx, `INSERT INTO games (id, players) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, gameID, names)
	return err
}

// InsertSnapshot stores the settled state after a turn. Replaying the same
// turn overwrites the earlier row.
func InsertSnapshot(ctx context.Context, gameID uuid.UUID, turn int, state interface{}) error {
	if DB == nil {
		return ErrNotConfigured
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = DB.Exec(ctx, `
		INSERT INTO game_snapshots (game_id, turn, state) VALUES ($1, $2, $3)
		ON CONFLICT (game_id, turn) DO UPDATE SET state = EXCLUDED.state, created_at = now()`,
		gameID, turn, data)
	return err
}

// MarkEnded stamps the game's end time.
func MarkEnded(ctx context.Context, gameID uuid.UUID) error {
	if DB == nil {
		return ErrNotConfigured
	}
	_, err := DB.Exec(ctx, `UPDATE games SET ended_at = now() WHERE id = $1`, gameID)
	return err
}

// LatestSnapshot returns the most recent turn and its JSON state, or turn -1
// when nothing was stored yet.
func LatestSnapshot(ctx context.Context, gameID uuid.UUID) (int, []byte, error) {
	if DB == nil {
		return -1, nil, ErrNotConfigured
	}
	var (
		turn  int
		state []byte
	)
	err := DB.QueryRow(ctx, `
		SELECT turn, state FROM game_snapshots WHERE game_id = $1 ORDER BY turn DESC LIMIT 1`,
		gameID).Scan(&turn, &state)
	if errors.Is(err, pgx.ErrNoRows) {
		return -1, nil, nil
	}
	if err != nil {
		return -1, nil, err
	}
	return turn, state, nil
}
