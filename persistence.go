package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Save file records, one per line as "key;value":
//
//	player;<name>;<hp>;<attack>
//	inventory;<Kind>:<name>,<Kind>:<name>
//	room;<room name>
const (
	recordPlayer    = "player"
	recordInventory = "inventory"
	recordRoom      = "room"
)

func encodeSave(s *GameState) string {
	p := s.Player
	tokens := make([]string, 0, len(p.Inventory))
	for _, it := range p.Inventory {
		tokens = append(tokens, string(it.Kind())+":"+it.Name())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s;%s;%d;%d\n", recordPlayer, p.Name, p.HP, p.Attack)
	fmt.Fprintf(&b, "%s;%s\n", recordInventory, strings.Join(tokens, ","))
	fmt.Fprintf(&b, "%s;%s\n", recordRoom, s.Current.Name)
	return b.String()
}

func saveGame(s *GameState) error {
	if err := os.WriteFile(s.SavePath, []byte(encodeSave(s)), 0o644); err != nil {
		return fmt.Errorf("could not save game: %w", err)
	}
	path := s.SavePath
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	outPrintf(s, "💾 Saved to %s\n", path)
	slog.Info("Game saved", "path", path, "score", s.Score)

	if err := appendScore(s.ScoresPath, s.Player.Name, s.Score, time.Now()); err != nil {
		slog.Warn("Could not record score", "path", s.ScoresPath, "error", err)
		outPrintf(s, "Could not record score: %v\n", err)
	}
	return nil
}

// decodeSave reads "key;value" lines. Lines without a separator are
// ignored and later keys win.
func decodeSave(r io.Reader) (map[string]string, error) {
	records := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ";")
		if !ok {
			continue
		}
		records[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func loadGame(s *GameState) error {
	f, err := os.Open(s.SavePath)
	if errors.Is(err, fs.ErrNotExist) {
		outPrintln(s, "No save found.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load game: %w", err)
	}
	defer f.Close()

	records, err := decodeSave(f)
	if err != nil {
		return fmt.Errorf("could not load game: %w", err)
	}

	restorePlayer(s, records)
	restoreInventory(s, records[recordInventory])

	// The room is only reported; the player stays where they are.
	roomName, ok := records[recordRoom]
	if !ok {
		roomName = s.World.Rooms[s.World.Start].Name
	}
	if s.World.RoomByName(roomName) == nil {
		outPrintf(s, "Warning: saved room %q is not part of this world.\n", roomName)
	}
	outPrintf(s, "📂 Game loaded (partially). Saved room: %s\n", roomName)
	slog.Info("Game loaded", "path", s.SavePath, "room", roomName, "items", len(s.Player.Inventory))
	return nil
}

func restorePlayer(s *GameState, records map[string]string) {
	p := s.Player
	defaults := func() {
		p.HP = s.World.PlayerHP
		p.Attack = s.World.PlayerAttack
	}

	data, ok := records[recordPlayer]
	if !ok {
		outPrintln(s, "Warning: player data is missing. Using defaults.")
		p.Name = s.World.PlayerName
		defaults()
		return
	}
	fields := strings.Split(data, ";")
	if len(fields) < 3 {
		outPrintln(s, "Warning: player data is incomplete. Using defaults.")
		p.Name = s.World.PlayerName
		defaults()
		return
	}

	p.Name = fields[0]
	hp, errHP := strconv.Atoi(strings.TrimSpace(fields[1]))
	attack, errAttack := strconv.Atoi(strings.TrimSpace(fields[2]))
	if errHP != nil || errAttack != nil {
		outPrintln(s, "Warning: malformed numbers in player data. Using defaults.")
		defaults()
		return
	}
	p.HP = hp
	p.Attack = attack
}

func restoreInventory(s *GameState, data string) {
	p := s.Player
	p.Inventory = nil
	if strings.TrimSpace(data) == "" {
		return
	}
	for _, token := range strings.Split(data, ",") {
		kindTag, name, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		kind := parseKind(kindTag)
		if it, known := s.World.CatalogItem(kind, name); known {
			p.Inventory = append(p.Inventory, it)
			continue
		}
		it, err := newItem(kind, name, defaultAmount(kind))
		if err != nil {
			outPrintf(s, "Unknown item type: %s\n", kindTag)
			continue
		}
		p.Inventory = append(p.Inventory, it)
	}
}
