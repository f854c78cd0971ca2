package main

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

//go:embed data/world.ini
var embeddedWorld []byte

const (
	roomSectionPrefix    = "Room."
	monsterSectionPrefix = "Monster."
)

type World struct {
	Rooms map[string]*Room
	// Order keeps rooms in the order they appear in the definition.
	Order []string
	Start string

	PlayerName   string
	PlayerHP     int
	PlayerAttack int

	DefaultLoot Item

	catalog map[string]Item
}

// LoadWorld builds the room graph from an INI definition. An empty path
// selects the definition compiled into the binary.
func LoadWorld(path string) (*World, error) {
	var source any = embeddedWorld
	if path != "" {
		source = path
	}
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	w := &World{
		Rooms:   make(map[string]*Room),
		catalog: make(map[string]Item),
	}

	game := cfg.Section("Game")
	w.Start = game.Key("Start").String()
	w.PlayerName = game.Key("PlayerName").MustString(DefaultPlayerName)
	w.PlayerHP = game.Key("PlayerHP").MustInt(DefaultPlayerHP)
	w.PlayerAttack = game.Key("PlayerAttack").MustInt(DefaultPlayerAttack)
	w.DefaultLoot = NewPotion("Victory Potion", 3)
	if spec := game.Key("DefaultLoot").String(); spec != "" {
		if w.DefaultLoot, err = parseItemSpec(spec); err != nil {
			return nil, fmt.Errorf("section Game: %w", err)
		}
	}
	w.remember(w.DefaultLoot)

	// First pass: monsters, so rooms can reference them
	monsters := make(map[string]*ini.Section)
	for _, sec := range cfg.Sections() {
		if key, ok := strings.CutPrefix(sec.Name(), monsterSectionPrefix); ok {
			monsters[key] = sec
		}
	}

	// Second pass: rooms
	for _, sec := range cfg.Sections() {
		key, ok := strings.CutPrefix(sec.Name(), roomSectionPrefix)
		if !ok {
			continue
		}
		r := &Room{
			Key:         key,
			Name:        sec.Key("Name").MustString(key),
			Description: sec.Key("Description").String(),
			Exits:       make(map[string]string),
			Hidden:      make(map[string]bool),
			Locks:       make(map[string]string),
		}
		if err := parsePairs(sec.Key("Exits").Strings(","), r.Exits); err != nil {
			return nil, fmt.Errorf("section %s: exits: %w", sec.Name(), err)
		}
		if err := parsePairs(sec.Key("Locks").Strings(","), r.Locks); err != nil {
			return nil, fmt.Errorf("section %s: locks: %w", sec.Name(), err)
		}
		for _, dir := range sec.Key("Hidden").Strings(",") {
			r.Hidden[strings.ToLower(dir)] = true
		}
		for _, spec := range sec.Key("Items").Strings(",") {
			it, err := parseItemSpec(spec)
			if err != nil {
				return nil, fmt.Errorf("section %s: %w", sec.Name(), err)
			}
			r.Items = append(r.Items, it)
			w.remember(it)
		}
		if ref := sec.Key("Monster").String(); ref != "" {
			msec, ok := monsters[ref]
			if !ok {
				return nil, fmt.Errorf("section %s: unknown monster %q", sec.Name(), ref)
			}
			m, err := w.buildMonster(ref, msec)
			if err != nil {
				return nil, err
			}
			r.Monster = m
		}
		w.Rooms[key] = r
		w.Order = append(w.Order, key)
	}

	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) buildMonster(ref string, sec *ini.Section) (*Monster, error) {
	m := &Monster{
		Name:  sec.Key("Name").MustString(ref),
		Level: sec.Key("Level").MustInt(1),
		HP:    sec.Key("HP").MustInt(1),
		Loot:  w.DefaultLoot,
	}
	if spec := sec.Key("Loot").String(); spec != "" {
		loot, err := parseItemSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("section %s: loot: %w", sec.Name(), err)
		}
		m.Loot = loot
		w.remember(loot)
	}
	return m, nil
}

// validate checks the graph and that every name can be written to a save
// file and read back.
func (w *World) validate() error {
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world has no rooms")
	}
	if _, ok := w.Rooms[w.Start]; !ok {
		return fmt.Errorf("start room %q does not exist", w.Start)
	}
	if strings.ContainsAny(w.PlayerName, ";\n") {
		return fmt.Errorf("player name %q must not contain ';'", w.PlayerName)
	}
	for _, it := range w.catalog {
		if strings.ContainsAny(it.Name(), ";,:\n") {
			return fmt.Errorf("item name %q must not contain ';', ',' or ':'", it.Name())
		}
	}
	for _, key := range w.Order {
		r := w.Rooms[key]
		for dir, target := range r.Exits {
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("room %q: exit %s leads to unknown room %q", key, dir, target)
			}
		}
		for dir := range r.Locks {
			if _, ok := r.Exits[dir]; !ok {
				return fmt.Errorf("room %q: lock on missing exit %s", key, dir)
			}
		}
	}
	return nil
}

// parsePairs fills dst from "left:right" entries; left is lower-cased.
func parsePairs(entries []string, dst map[string]string) error {
	for _, e := range entries {
		left, right, ok := strings.Cut(e, ":")
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if !ok || left == "" || right == "" {
			return fmt.Errorf("malformed entry %q", e)
		}
		dst[strings.ToLower(left)] = right
	}
	return nil
}

func catalogKey(kind ItemKind, name string) string {
	return string(kind) + ":" + strings.ToLower(name)
}

func (w *World) remember(it Item) {
	w.catalog[catalogKey(it.Kind(), it.Name())] = it
}

// CatalogItem returns the item the world defines under kind and name.
func (w *World) CatalogItem(kind ItemKind, name string) (Item, bool) {
	it, ok := w.catalog[catalogKey(kind, name)]
	return it, ok
}

// RoomByName resolves a display name back to a room.
func (w *World) RoomByName(name string) *Room {
	for _, key := range w.Order {
		if r := w.Rooms[key]; strings.EqualFold(r.Name, name) {
			return r
		}
	}
	return nil
}

// VisibleExits lists the exit directions shown to the player, sorted.
func (r *Room) VisibleExits() []string {
	dirs := make([]string, 0, len(r.Exits))
	for dir := range r.Exits {
		if !r.Hidden[dir] {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}
