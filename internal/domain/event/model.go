package event

import "fmt"

// Kind tells how an event is scored: team events place whole departments,
// individual events place players.
type Kind string

const (
	KindTeam       Kind = "team"
	KindIndividual Kind = "individual"
)

func (k Kind) Valid() bool {
	return k == KindTeam || k == KindIndividual
}

func (k Kind) IsTeam() bool {
	return k == KindTeam
}

// Event is one competition on the sports day program.
type Event struct {
	ID   int64
	Name string
	Kind Kind
}

func (e Event) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("event id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("event kind %q is not valid", e.Kind)
	}

	return nil
}
