package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ItemKind string

const (
	KindPotion ItemKind = "Potion"
	KindKey    ItemKind = "Key"
	KindWeapon ItemKind = "Weapon"
)

var kindTitler = cases.Title(language.English)

// parseKind normalises a kind tag, so "potion" and "POTION" both read as
// KindPotion.
func parseKind(tag string) ItemKind {
	return ItemKind(kindTitler.String(strings.TrimSpace(tag)))
}

// Item is anything a room can hold and a player can carry.
type Item interface {
	Name() string
	Kind() ItemKind
	Apply(s *GameState) error
}

type Potion struct {
	name string
	Heal int
}

func NewPotion(name string, heal int) Potion { return Potion{name: name, Heal: heal} }

func (p Potion) Name() string   { return p.name }
func (p Potion) Kind() ItemKind { return KindPotion }

func (p Potion) Apply(s *GameState) error {
	s.Player.HP += p.Heal
	s.Player.RemoveItem(p)
	outPrintf(s, "🧪 You drink %s. HP: %d\n", p.name, displayHP(s.Player.HP))
	return nil
}

type Key struct {
	name string
}

func NewKey(name string) Key { return Key{name: name} }

func (k Key) Name() string   { return k.name }
func (k Key) Kind() ItemKind { return KindKey }

func (k Key) Apply(s *GameState) error {
	outPrintln(s, "🔑 The key jingles in your hand. There must be a door for it somewhere.")
	return nil
}

type Weapon struct {
	name  string
	Bonus int
}

func NewWeapon(name string, bonus int) Weapon { return Weapon{name: name, Bonus: bonus} }

func (w Weapon) Name() string   { return w.name }
func (w Weapon) Kind() ItemKind { return KindWeapon }

func (w Weapon) Apply(s *GameState) error {
	s.Player.Attack += w.Bonus
	s.Player.RemoveItem(w)
	outPrintf(s, "⚔️  You equip %s. Attack: %d\n", w.name, s.Player.Attack)
	return nil
}

// newItem builds an item of the given kind. amount is the heal of a potion
// or the bonus of a weapon and is ignored for keys.
func newItem(kind ItemKind, name string, amount int) (Item, error) {
	switch kind {
	case KindPotion:
		return NewPotion(name, amount), nil
	case KindKey:
		return NewKey(name), nil
	case KindWeapon:
		return NewWeapon(name, amount), nil
	}
	return nil, fmt.Errorf("unknown item kind %q", kind)
}

func defaultAmount(kind ItemKind) int {
	switch kind {
	case KindPotion:
		return DefaultPotionHeal
	case KindWeapon:
		return DefaultWeaponBonus
	}
	return 0
}

// parseItemSpec reads "Kind:Name" or "Kind:Name:Amount".
func parseItemSpec(spec string) (Item, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return nil, fmt.Errorf("malformed item %q", spec)
	}
	kind := parseKind(parts[0])
	amount := defaultAmount(kind)
	if len(parts) > 2 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("malformed amount in item %q: %w", spec, err)
		}
		amount = n
	}
	return newItem(kind, strings.TrimSpace(parts[1]), amount)
}

func itemAmount(it Item) int {
	switch v := it.(type) {
	case Potion:
		return v.Heal
	case Weapon:
		return v.Bonus
	}
	return 0
}

func describeItem(it Item) string {
	switch v := it.(type) {
	case Potion:
		return fmt.Sprintf("%s (heals %d)", v.name, v.Heal)
	case Weapon:
		return fmt.Sprintf("%s (+%d attack)", v.name, v.Bonus)
	}
	return it.Name()
}

func findItem(items []Item, name string) (int, Item) {
	for i, it := range items {
		if strings.EqualFold(it.Name(), name) {
			return i, it
		}
	}
	return -1, nil
}

func removeAt(items []Item, idx int) []Item {
	return append(items[:idx], items[idx+1:]...)
}

func (p *Player) HasItem(kind ItemKind, name string) bool {
	for _, it := range p.Inventory {
		if it.Kind() == kind && it.Name() == name {
			return true
		}
	}
	return false
}

// RemoveItem drops the first inventory entry equal to it.
func (p *Player) RemoveItem(it Item) bool {
	for i, held := range p.Inventory {
		if held == it {
			p.Inventory = removeAt(p.Inventory, i)
			return true
		}
	}
	return false
}

func displayHP(hp int) int {
	return max(0, hp)
}
