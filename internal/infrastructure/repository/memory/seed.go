package memory

import (
	"github.com/rakhadian/sportsday/internal/domain/event"
	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/team"
)

func SeedEvents() []event.Event {
	return []event.Event{
		{ID: 1, Name: "Tug of War", Kind: event.KindTeam},
		{ID: 2, Name: "Relay Race", Kind: event.KindTeam},
		{ID: 3, Name: "Futsal", Kind: event.KindTeam},
		{ID: 4, Name: "Table Tennis", Kind: event.KindIndividual},
		{ID: 5, Name: "Badminton", Kind: event.KindIndividual},
		{ID: 6, Name: "Chess", Kind: event.KindIndividual},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Engineering"},
		{ID: 2, Name: "Product"},
		{ID: 3, Name: "Operations"},
		{ID: 4, Name: "Finance"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Asep Maulana", TeamID: 1},
		{ID: 2, Name: "Bunga Lestari", TeamID: 1},
		{ID: 3, Name: "Citra Dewi", TeamID: 2},
		{ID: 4, Name: "Dimas Pratama", TeamID: 2},
		{ID: 5, Name: "Eka Saputra", TeamID: 3},
		{ID: 6, Name: "Fajar Nugroho", TeamID: 3},
		{ID: 7, Name: "Gita Permata", TeamID: 4},
		{ID: 8, Name: "Hendra Wijaya", TeamID: 4},
	}
}
