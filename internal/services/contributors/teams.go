package contributors

import "github.com/Tomas-vilte/DoraPulse/internal/domain/models"

// TeamRegistry resolves team ids against the teams loaded at startup.
type TeamRegistry struct {
	teams map[string]models.Team
}

// NewTeamRegistry crea el registro de equipos.
func NewTeamRegistry(teams []models.Team) *TeamRegistry {
	byID := make(map[string]models.Team, len(teams))
	for _, team := range teams {
		byID[team.ID] = team
	}
	return &TeamRegistry{teams: byID}
}

// Get returns the team with the given id.
func (r *TeamRegistry) Get(id string) (models.Team, bool) {
	team, ok := r.teams[id]
	return team, ok
}
