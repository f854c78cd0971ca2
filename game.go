package main

import (
	"fmt"
	"io"
)

type GameOptions struct {
	WorldPath      string
	SavePath       string
	ScoresPath     string
	ScoreboardSize int
}

func DefaultGameOptions() GameOptions {
	return GameOptions{
		SavePath:       "save.txt",
		ScoresPath:     "scores.csv",
		ScoreboardSize: 10,
	}
}

// NewGame builds a fresh world and places the player in the start room.
func NewGame(opts GameOptions, out io.Writer) (*GameState, error) {
	w, err := LoadWorld(opts.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	s := &GameState{
		World:          w,
		Player:         NewPlayer(w.PlayerName, w.PlayerHP, w.PlayerAttack),
		Current:        w.Rooms[w.Start],
		IsPlaying:      true,
		SavePath:       opts.SavePath,
		ScoresPath:     opts.ScoresPath,
		ScoreboardSize: opts.ScoreboardSize,
		Out:            out,
	}
	if s.ScoreboardSize <= 0 {
		s.ScoreboardSize = DefaultGameOptions().ScoreboardSize
	}
	return s, nil
}
