package domain

import "context"

// Region is a map district. Aliases are the literal district labels accepted as
// denoting the region; when empty the region name is the only alias. Path is the
// SVG draw geometry and is opaque to matching.
// swagger:model Region
type Region struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Path    string   `json:"path"`
}

// RegionSummary is a region annotated for the map view.
// swagger:model RegionSummary
type RegionSummary struct {
	Region
	MemberCount    int  `json:"member_count"`
	HasAmbassadors bool `json:"has_ambassadors"`
}

// RegionDetail is a region with the ambassadors whose district denotes it.
// swagger:model RegionDetail
type RegionDetail struct {
	Region
	Ambassadors []*Ambassador `json:"ambassadors"`
}

// MapService answers map hover and overview queries.
type MapService interface {
	Regions(ctx context.Context) ([]*RegionSummary, error)
	Region(ctx context.Context, regionID string) (*RegionDetail, error)
}
