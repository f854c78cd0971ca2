package main

const (
	GameName    = "DungeonMini"
	GameVersion = "v1.0"

	DefaultPlayerName   = "Hero"
	DefaultPlayerHP     = 20
	DefaultPlayerAttack = 5

	DefaultPotionHeal  = 5
	DefaultWeaponBonus = 3

	ScorePerCommand  = 1
	ScoreMonsterKill = 10
	MonsterDamageMul = 2

	MaxHistory = 10
)

// Room is one location of the world. Exits maps a direction to the key of
// the neighbouring room; Locks maps a direction to the name of the key item
// that opens it.
type Room struct {
	Key         string
	Name        string
	Description string
	Exits       map[string]string
	Hidden      map[string]bool
	Locks       map[string]string
	Items       []Item
	Monster     *Monster
}

type Monster struct {
	Name  string
	Level int
	HP    int
	Loot  Item
}

type Player struct {
	Name      string
	HP        int
	Attack    int
	Inventory []Item
}

func NewPlayer(name string, hp, attack int) *Player {
	return &Player{Name: name, HP: hp, Attack: attack}
}
