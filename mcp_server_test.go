package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()
	dir := t.TempDir()
	server, err := NewMCPServer(GameOptions{
		SavePath:   filepath.Join(dir, "save.txt"),
		ScoresPath: filepath.Join(dir, "scores.csv"),
	})
	require.NoError(t, err)
	return server
}

func TestMCPServer_HandleCommand(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()

	_, res, err := server.HandleCommand(ctx, nil, CommandInput{Command: "move north"})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "You walk into: Forest")
	assert.Equal(t, "forest", res.State.RoomKey)
	assert.Equal(t, []string{"east", "south"}, res.State.Exits)
	assert.Equal(t, "Wolf", res.State.Monster)
	assert.Equal(t, 1, res.State.Score)

	_, res, err = server.HandleCommand(ctx, nil, CommandInput{Command: "take Small Potion"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Small Potion"}, res.State.Inventory)

	_, res, err = server.HandleCommand(ctx, nil, CommandInput{Command: "  "})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "=== Forest ===")
}

func TestMCPServer_Reset(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()

	_, _, err := server.HandleCommand(ctx, nil, CommandInput{Command: "move north"})
	require.NoError(t, err)

	_, res, err := server.HandleCommand(ctx, nil, CommandInput{Reset: true})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "=== Square ===")
	assert.Equal(t, "square", res.State.RoomKey)
	assert.Equal(t, 0, res.State.Score)

	_, res, err = server.HandleCommand(ctx, nil, CommandInput{Reset: true, Command: "move north"})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "=== Square ===")
	assert.Contains(t, res.Output, "You walk into: Forest")
}

func TestMCPServer_AfterDeath(t *testing.T) {
	server := newTestMCPServer(t)
	ctx := context.Background()
	server.game.Player.HP = 1

	_, _, err := server.HandleCommand(ctx, nil, CommandInput{Command: "move north"})
	require.NoError(t, err)
	_, res, err := server.HandleCommand(ctx, nil, CommandInput{Command: "fight"})
	require.NoError(t, err)
	assert.True(t, res.State.IsDead)
	assert.False(t, res.State.IsPlaying)

	_, res, err = server.HandleCommand(ctx, nil, CommandInput{Command: "look"})
	require.NoError(t, err)
	assert.Contains(t, res.Output, "The game is over. Reset to play again.")
}
