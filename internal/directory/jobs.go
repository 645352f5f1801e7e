package directory

import (
	"slices"
	"strings"

	"startupambassadors/internal/domain"
)

// FilterJobListings returns listings whose startup name, description or any
// needed role contains the query (case-insensitive), restricted to listings
// that need role unless role selects everything.
func FilterJobListings(listings []*domain.JobListing, query, role string) []*domain.JobListing {
	q := strings.ToLower(strings.TrimSpace(query))
	all := IsAll(role)

	out := make([]*domain.JobListing, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		if !all && !slices.Contains(l.RolesNeeded, role) {
			continue
		}
		if q != "" && !listingMatches(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func listingMatches(l *domain.JobListing, q string) bool {
	if strings.Contains(strings.ToLower(l.StartupName), q) ||
		strings.Contains(strings.ToLower(l.Description), q) {
		return true
	}
	for _, r := range l.RolesNeeded {
		if strings.Contains(strings.ToLower(r), q) {
			return true
		}
	}
	return false
}

// JobRoles returns the distinct roles needed across listings, sorted.
func JobRoles(listings []*domain.JobListing) []string {
	seen := make(map[string]struct{})
	roles := make([]string, 0)
	for _, l := range listings {
		if l == nil {
			continue
		}
		for _, r := range l.RolesNeeded {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			roles = append(roles, r)
		}
	}
	slices.Sort(roles)
	return roles
}
