package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

var scoreHeader = []string{"ts", "player", "score"}

type ScoreEntry struct {
	Player string
	Score  int
}

// appendScore adds one row to the score file, writing the header first
// when the file is new.
func appendScore(path, player string, score int, at time.Time) error {
	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening score file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(scoreHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{at.Format(time.RFC3339), player, strconv.Itoa(score)}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// readTopScores returns at most limit entries, best first. Rows that do
// not parse are skipped.
func readTopScores(r io.Reader, limit int) ([]ScoreEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []ScoreEntry
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		header := first
		first = false
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, err
		}
		if header {
			continue
		}
		if len(rec) < 3 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			continue
		}
		entries = append(entries, ScoreEntry{Player: rec[1], Score: n})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func printScores(s *GameState) error {
	f, err := os.Open(s.ScoresPath)
	if errors.Is(err, fs.ErrNotExist) {
		outPrintln(s, "No scores yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading scores: %w", err)
	}
	defer f.Close()

	entries, err := readTopScores(f, s.ScoreboardSize)
	if err != nil {
		return fmt.Errorf("reading scores: %w", err)
	}
	outPrintf(s, "🏆 Leaderboard (top %d):\n", s.ScoreboardSize)
	for _, e := range entries {
		outPrintf(s, "%s - %d\n", e.Player, e.Score)
	}
	return nil
}
