package geo

import "startupambassadors/internal/domain"

// Index is a precomputed region -> persons map for one person list. Build a new
// index whenever the list changes.
type Index struct {
	table     *Table
	byRegion  map[string][]*domain.Ambassador
	unmatched []*domain.Ambassador
}

// BuildIndex assigns every person to the region its district denotes in a
// single pass. Persons whose district matches no alias are kept as unmatched.
func (t *Table) BuildIndex(persons []*domain.Ambassador) *Index {
	idx := &Index{
		table:     t,
		byRegion:  make(map[string][]*domain.Ambassador, len(t.regions)),
		unmatched: make([]*domain.Ambassador, 0),
	}
	for _, p := range persons {
		if p == nil {
			continue
		}
		i, ok := t.owner[Normalize(p.District)]
		if !ok {
			idx.unmatched = append(idx.unmatched, p)
			continue
		}
		name := t.regions[i].Name
		idx.byRegion[name] = append(idx.byRegion[name], p)
	}
	return idx
}

// PersonsIn returns the persons of the named region in input order. The result
// is never nil.
func (idx *Index) PersonsIn(regionName string) []*domain.Ambassador {
	ps := idx.byRegion[regionName]
	out := make([]*domain.Ambassador, len(ps))
	copy(out, ps)
	return out
}

// HasAny reports whether the named region has at least one person.
func (idx *Index) HasAny(regionName string) bool {
	return len(idx.byRegion[regionName]) > 0
}

// Count returns the number of persons in the named region.
func (idx *Index) Count(regionName string) int {
	return len(idx.byRegion[regionName])
}

// Unmatched returns the persons whose district denotes no region.
func (idx *Index) Unmatched() []*domain.Ambassador {
	out := make([]*domain.Ambassador, len(idx.unmatched))
	copy(out, idx.unmatched)
	return out
}
