package main

import "io"

type GameState struct {
	World   *World
	Player  *Player
	Current *Room

	IsPlaying  bool
	IsDead     bool
	IsHeadless bool
	Score      int

	SavePath       string
	ScoresPath     string
	ScoreboardSize int

	History      [MaxHistory]string
	HistoryCount int

	Out io.Writer
}

// ExitCode is the process status for the state the game ended in.
func (s *GameState) ExitCode() int {
	if s.IsDead {
		return 1
	}
	return 0
}

func (s *GameState) addScore(n int) {
	s.Score += n
}

// remember appends a line to the ring of recent commands, skipping
// immediate repeats.
func (s *GameState) remember(line string) {
	if line == "" {
		return
	}
	if s.HistoryCount > 0 && s.History[(s.HistoryCount-1)%MaxHistory] == line {
		return
	}
	s.History[s.HistoryCount%MaxHistory] = line
	s.HistoryCount++
}
