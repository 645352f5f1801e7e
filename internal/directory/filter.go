// Package directory holds the in-memory filters behind the directory, job
// board and network pages. Every function is pure and keeps input order.
package directory

import (
	"strings"

	"startupambassadors/internal/domain"
)

// Category selectors that match every person. AllCategoryLabel is the label the
// site shows in the district picker.
const (
	AllCategory      = "ALL"
	AllCategoryLabel = "Barchasi"
)

// IsAll reports whether category selects everyone.
func IsAll(category string) bool {
	return category == "" || category == AllCategory || category == AllCategoryLabel
}

// Filter returns the persons matching both the free-text query and the category.
//
// The query is trimmed and lower-cased once; a person matches when the query is
// a substring of the lower-cased name, role or team. District is never searched.
// The category matches when it selects everyone or equals the person's district
// or team exactly (case-sensitive, no alias resolution).
//
// The result is never nil, so an empty result is distinguishable from a list
// that has not been loaded yet.
func Filter(persons []*domain.Ambassador, query, category string) []*domain.Ambassador {
	q := strings.ToLower(strings.TrimSpace(query))
	all := IsAll(category)

	out := make([]*domain.Ambassador, 0, len(persons))
	for _, p := range persons {
		if p == nil {
			continue
		}
		if !all && p.District != category && p.Team != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p *domain.Ambassador, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Role), q) ||
		(p.Team != "" && strings.Contains(strings.ToLower(p.Team), q))
}
