package domain

import (
	"context"
	"time"
)

// Ambassador is a person listed in the directory: an ambassador or a mentor.
// District is a free-text region label and is matched against map regions
// through their alias sets.
// swagger:model Ambassador
type Ambassador struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Role      string    `json:"role"`
	Team      string    `json:"team"`
	Image     *string   `json:"image"`
	Telegram  *string   `json:"telegram"`
	Linkedin  *string   `json:"linkedin"`
	IsLeader  bool      `json:"is_leader"`
	CreatedAt time.Time `json:"created_at"`
}

// Team is one branch of the team tree: leaders first, then the remaining members.
// swagger:model Team
type Team struct {
	Name    string        `json:"name"`
	Leaders []*Ambassador `json:"leaders"`
	Members []*Ambassador `json:"members"`
}

// AmbassadorRepository reads ambassadors. Records are created by administrators
// directly in the store.
type AmbassadorRepository interface {
	// List returns every ambassador, leaders first, then by name.
	List(ctx context.Context) ([]*Ambassador, error)
}

// AmbassadorService serves the directory views.
type AmbassadorService interface {
	Search(ctx context.Context, query, district string) ([]*Ambassador, error)
	TeamTree(ctx context.Context) ([]*Team, error)
	Districts() []string
}
