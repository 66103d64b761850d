package player

import "fmt"

// Player belongs to exactly one team for the whole competition.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
