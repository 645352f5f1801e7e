package directory

import (
	"strings"

	"startupambassadors/internal/domain"
)

// GroupTeams builds the team tree. Teams appear in the order their first member
// appears; within a team leaders come first, each group in input order. Persons
// without a team are not part of the tree.
func GroupTeams(persons []*domain.Ambassador) []*domain.Team {
	teams := make([]*domain.Team, 0)
	byName := make(map[string]*domain.Team)
	for _, p := range persons {
		if p == nil {
			continue
		}
		name := strings.TrimSpace(p.Team)
		if name == "" {
			continue
		}
		t, ok := byName[name]
		if !ok {
			t = &domain.Team{
				Name:    name,
				Leaders: []*domain.Ambassador{},
				Members: []*domain.Ambassador{},
			}
			byName[name] = t
			teams = append(teams, t)
		}
		if p.IsLeader {
			t.Leaders = append(t.Leaders, p)
		} else {
			t.Members = append(t.Members, p)
		}
	}
	return teams
}
