package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaysUntilInputEnds(t *testing.T) {
	publishPath := filepath.Join(t.TempDir(), "index.html")
	t.Setenv("MONOPOLY_PLAYERS", "Alice,Bob")
	t.Setenv("MONOPOLY_INTERACTIVE", "false")
	t.Setenv("MONOPOLY_SEED", "1")
	t.Setenv("PUBLISH_PATH", publishPath)

	var stdout bytes.Buffer
	err := run(context.Background(), strings.NewReader("1 2\n"), &stdout, io.Discard)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Summary after turn 1")
	assert.Contains(t, out, "Alice : $1440")
	assert.Contains(t, out, "1. Alice ($1500)")

	page, err := os.ReadFile(publishPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Baltic Avenue")
}

func TestRunAsksForPlayers(t *testing.T) {
	t.Setenv("MONOPOLY_INTERACTIVE", "false")

	var stdout bytes.Buffer
	err := run(context.Background(), strings.NewReader("2\nAlice\nBob\n"), &stdout, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Enter name for Player 2")
	assert.Contains(t, stdout.String(), "Final standings:")
}

func TestRunRejectsSinglePlayer(t *testing.T) {
	t.Setenv("MONOPOLY_PLAYERS", "Alice")
	err := run(context.Background(), strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	t.Setenv("MONOPOLY_PLAYERS", "Alice,Bob")
	t.Setenv("LOG_LEVEL", "loud")
	err := run(context.Background(), strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)
}
