package main

import "log/slog"

// cmdFight runs one exchange: the player strikes first, and a surviving
// monster answers with level*2 damage.
func cmdFight(s *GameState, args []string) error {
	room := s.Current
	m := room.Monster
	if m == nil {
		outPrintln(s, "There is no monster here.")
		return nil
	}

	p := s.Player
	playerDmg := p.Attack
	monsterDmg := m.Level * MonsterDamageMul

	m.HP -= playerDmg
	outPrintf(s, "⚔️  You hit %s for %d. Monster HP: %d\n", m.Name, playerDmg, displayHP(m.HP))

	if m.HP <= 0 {
		outPrintln(s, "💀 Monster defeated!")
		if m.Loot != nil {
			room.Items = append(room.Items, m.Loot)
			outPrintf(s, "📦 %s drops %s.\n", m.Name, describeItem(m.Loot))
		}
		room.Monster = nil
		s.addScore(ScoreMonsterKill)
		slog.Info("Monster defeated", "monster", m.Name, "room", room.Key)
		return nil
	}

	p.HP -= monsterDmg
	outPrintf(s, "🩸 The monster strikes back for %d. Your HP: %d\n", monsterDmg, displayHP(p.HP))

	if p.HP <= 0 {
		outPrintln(s, "☠️  You died... Game over.")
		s.IsDead = true
		s.IsPlaying = false
		slog.Info("Player died", "monster", m.Name, "room", room.Key, "score", s.Score)
	}
	return nil
}
