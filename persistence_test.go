package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSave(t *testing.T) {
	s, _ := newTestGame(t)
	s.Player.HP = 17
	s.Player.Attack = 8
	s.Player.Inventory = []Item{NewPotion("Small Potion", 5), NewKey("East Door Key")}

	assert.Equal(t, "player;Hero;17;8\n"+
		"inventory;Potion:Small Potion,Key:East Door Key\n"+
		"room;Square\n", encodeSave(s))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, out := newTestGame(t)
	play(t, s, out, "move north", "take Small Potion", "fight", "fight", "take East Door Key")
	s.Player.Inventory = append(s.Player.Inventory, NewWeapon("Novice Sword", 3), NewPotion("Victory Potion", 3))
	want := append([]Item(nil), s.Player.Inventory...)
	wantHP := s.Player.HP

	got := play(t, s, out, "save")
	require.NotContains(t, got, "Error")
	require.FileExists(t, s.SavePath)

	var out2 bytes.Buffer
	s2, err := NewGame(GameOptions{SavePath: s.SavePath, ScoresPath: s.ScoresPath}, &out2)
	require.NoError(t, err)

	got = play(t, s2, &out2, "load")

	assert.Contains(t, got, "Game loaded (partially). Saved room: Forest")
	assert.Equal(t, want, s2.Player.Inventory, "amounts come from the world catalogue")
	assert.Equal(t, wantHP, s2.Player.HP)
	assert.Equal(t, DefaultPlayerAttack, s2.Player.Attack)
	assert.Equal(t, "square", s2.Current.Key, "position is not restored")
}

func TestSave_AppendsScore(t *testing.T) {
	s, out := newTestGame(t)
	play(t, s, out, "look", "look", "save", "look", "save")

	data, err := os.ReadFile(s.ScoresPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ts,player,score", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",Hero,2"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",Hero,4"), lines[2])
}

func TestSave_WriteFailure(t *testing.T) {
	s, out := newTestGame(t)
	s.SavePath = filepath.Join(t.TempDir(), "missing", "save.txt")

	got := play(t, s, out, "save")

	assert.Contains(t, got, "Unexpected error: could not save game")
	assert.True(t, s.IsPlaying)
	assert.Equal(t, 0, s.Score)
}

func TestLoad_NoSave(t *testing.T) {
	s, out := newTestGame(t)

	got := play(t, s, out, "load")

	assert.Contains(t, got, "No save found.")
	assert.True(t, s.IsPlaying)
}

func TestLoad_PlayerRecordDefaults(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		warning  string
		wantName string
	}{
		{"missing", "inventory;\n", "player data is missing", DefaultPlayerName},
		{"incomplete", "player;Alice;12\n", "player data is incomplete", DefaultPlayerName},
		{"bad numbers", "player;Alice;lots;7\n", "malformed numbers", "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestGame(t)
			s.Player.HP = 3
			s.Player.Attack = 99
			require.NoError(t, os.WriteFile(s.SavePath, []byte(tt.content), 0o644))

			got := play(t, s, out, "load")

			assert.Contains(t, got, tt.warning)
			assert.Equal(t, tt.wantName, s.Player.Name)
			assert.Equal(t, DefaultPlayerHP, s.Player.HP)
			assert.Equal(t, DefaultPlayerAttack, s.Player.Attack)
		})
	}
}

func TestLoad_Inventory(t *testing.T) {
	s, out := newTestGame(t)
	s.Player.Inventory = []Item{NewKey("old")}
	content := "player;Alice;9;4\n" +
		"inventory;Potion:Mystery Brew,Scroll:Fireball,broken,Weapon:Club,Key:East Door Key\n" +
		"room;Abandoned Temple\n"
	require.NoError(t, os.WriteFile(s.SavePath, []byte(content), 0o644))

	got := play(t, s, out, "load")

	assert.Contains(t, got, "Unknown item type: Scroll")
	assert.Contains(t, got, "Saved room: Abandoned Temple")
	assert.Equal(t, []Item{
		NewPotion("Mystery Brew", DefaultPotionHeal),
		NewWeapon("Club", DefaultWeaponBonus),
		NewKey("East Door Key"),
	}, s.Player.Inventory)
	assert.Equal(t, "Alice", s.Player.Name)
	assert.Equal(t, 9, s.Player.HP)
	assert.Equal(t, 4, s.Player.Attack)
}

func TestLoad_KindTagsIgnoreCase(t *testing.T) {
	s, out := newTestGame(t)
	content := "player;Hero;20;5\ninventory;potion:Small Potion,WEAPON:Club\nroom;Square\n"
	require.NoError(t, os.WriteFile(s.SavePath, []byte(content), 0o644))

	got := play(t, s, out, "load")

	assert.NotContains(t, got, "Unknown item type")
	assert.Equal(t, []Item{
		NewPotion("Small Potion", 5),
		NewWeapon("Club", DefaultWeaponBonus),
	}, s.Player.Inventory)
}

func TestLoad_EmptyInventoryClears(t *testing.T) {
	s, out := newTestGame(t)
	s.Player.Inventory = []Item{NewKey("old")}
	require.NoError(t, os.WriteFile(s.SavePath, []byte("player;Hero;20;5\ninventory;\n"), 0o644))

	got := play(t, s, out, "load")

	assert.Empty(t, s.Player.Inventory)
	assert.Contains(t, got, "Saved room: Square", "missing room record falls back to the start room")
	assert.NotContains(t, got, "Warning")
}

func TestLoad_UnknownRoom(t *testing.T) {
	s, out := newTestGame(t)
	require.NoError(t, os.WriteFile(s.SavePath, []byte("player;Hero;20;5\nroom;Moon Base\n"), 0o644))

	got := play(t, s, out, "load")

	assert.Contains(t, got, `saved room "Moon Base" is not part of this world`)
	assert.Equal(t, "square", s.Current.Key)
}

func TestDecodeSave(t *testing.T) {
	records, err := decodeSave(strings.NewReader("player;A;1;2\nnoise\nroom;Cave\nroom;Forest\n"))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"player": "A;1;2", "room": "Forest"}, records)
}
