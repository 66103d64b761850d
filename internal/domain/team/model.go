package team

import "fmt"

// Team is a department squad competing across events.
type Team struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
