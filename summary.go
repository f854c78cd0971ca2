package main

type GameSummary struct {
	RoomKey   string   `json:"room_key" jsonschema:"Current room key"`
	RoomName  string   `json:"room_name" jsonschema:"Current room name"`
	Exits     []string `json:"exits" jsonschema:"Visible exits from the current room"`
	Monster   string   `json:"monster,omitempty" jsonschema:"Monster in the current room, if any"`
	HP        int      `json:"hp" jsonschema:"Player hit points"`
	Attack    int      `json:"attack" jsonschema:"Player attack power"`
	Score     int      `json:"score" jsonschema:"Current score"`
	IsPlaying bool     `json:"is_playing" jsonschema:"Whether the game is still active"`
	IsDead    bool     `json:"is_dead" jsonschema:"Whether the player has died"`
	Inventory []string `json:"inventory" jsonschema:"Names of carried items"`
}

func SummarizeState(s *GameState) GameSummary {
	summary := GameSummary{
		HP:        s.Player.HP,
		Attack:    s.Player.Attack,
		Score:     s.Score,
		IsPlaying: s.IsPlaying,
		IsDead:    s.IsDead,
		Inventory: []string{},
	}
	if s.Current != nil {
		summary.RoomKey = s.Current.Key
		summary.RoomName = s.Current.Name
		summary.Exits = s.Current.VisibleExits()
		if s.Current.Monster != nil {
			summary.Monster = s.Current.Monster.Name
		}
	}
	for _, it := range s.Player.Inventory {
		summary.Inventory = append(summary.Inventory, it.Name())
	}
	return summary
}
