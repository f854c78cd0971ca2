package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestGame starts a game on the built-in world with files in a temp dir.
func newTestGame(t *testing.T) (*GameState, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	s, err := NewGame(GameOptions{
		SavePath:       filepath.Join(dir, "save.txt"),
		ScoresPath:     filepath.Join(dir, "scores.csv"),
		ScoreboardSize: 10,
	}, &out)
	require.NoError(t, err)
	return s, &out
}

// play feeds commands and returns everything they printed.
func play(t *testing.T, s *GameState, out *bytes.Buffer, cmds ...string) string {
	t.Helper()
	out.Reset()
	for _, c := range cmds {
		processCommand(s, c)
	}
	return out.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
