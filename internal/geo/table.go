// Package geo matches free-text district labels to the map regions.
//
// Matching is exact string equality after Normalize (trim, lower-case) against
// each region's alias set. There is no fuzzy matching: a label that matches no
// alias belongs to no region.
package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"startupambassadors/internal/domain"
)

//go:embed regions.yaml
var regionsYAML []byte

// ErrAliasConflict is returned by Validate when two regions accept the same label.
var ErrAliasConflict = errors.New("alias shared by two regions")

type regionFile struct {
	ViewBox string `yaml:"viewbox"`
	Regions []struct {
		ID      string   `yaml:"id"`
		Name    string   `yaml:"name"`
		Aliases []string `yaml:"aliases"`
		Path    string   `yaml:"path"`
	} `yaml:"regions"`
}

// Table is an immutable set of regions with their alias sets.
type Table struct {
	viewBox string
	regions []domain.Region
	byID    map[string]int
	byName  map[string]int
	// owner maps a normalized alias to the index of the region accepting it.
	owner map[string]int
}

// Normalize is the label normalization used on both sides of every comparison.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Load parses a YAML region table and validates it.
func Load(data []byte) (*Table, error) {
	var f regionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse regions: %w", err)
	}
	regions := make([]domain.Region, 0, len(f.Regions))
	for _, r := range f.Regions {
		regions = append(regions, domain.Region{
			ID:      r.ID,
			Name:    r.Name,
			Aliases: r.Aliases,
			Path:    r.Path,
		})
	}
	return NewTable(f.ViewBox, regions)
}

// NewTable builds a table from regions and validates it.
func NewTable(viewBox string, regions []domain.Region) (*Table, error) {
	t := &Table{
		viewBox: viewBox,
		regions: make([]domain.Region, len(regions)),
		byID:    make(map[string]int, len(regions)),
		byName:  make(map[string]int, len(regions)),
		owner:   make(map[string]int),
	}
	for i, r := range regions {
		r.Aliases = append([]string(nil), r.Aliases...)
		t.regions[i] = r
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for i, r := range t.regions {
		t.byID[r.ID] = i
		t.byName[r.Name] = i
		for _, a := range t.aliasesOf(r) {
			t.owner[Normalize(a)] = i
		}
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded Tashkent region table.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(regionsYAML)
	})
	return defaultTable, defaultErr
}

// MustDefault is Default for callers that treat a broken embedded table as a
// build defect.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(fmt.Sprintf("geo: embedded region table: %v", err))
	}
	return t
}

// Validate checks that region ids and names are present and unique and that
// no normalized alias is accepted by two regions.
func (t *Table) Validate() error {
	ids := make(map[string]struct{}, len(t.regions))
	names := make(map[string]struct{}, len(t.regions))
	owners := make(map[string]string)
	for _, r := range t.regions {
		if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("region %q/%q: id and name are required", r.ID, r.Name)
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("duplicate region id %q", r.ID)
		}
		ids[r.ID] = struct{}{}
		if _, dup := names[r.Name]; dup {
			return fmt.Errorf("duplicate region name %q", r.Name)
		}
		names[r.Name] = struct{}{}

		for _, a := range t.aliasesOf(r) {
			n := Normalize(a)
			if n == "" {
				return fmt.Errorf("region %q: empty alias", r.Name)
			}
			if other, ok := owners[n]; ok && other != r.Name {
				return fmt.Errorf("%w: %q accepted by %q and %q", ErrAliasConflict, a, other, r.Name)
			}
			owners[n] = r.Name
		}
	}
	return nil
}

// ViewBox returns the SVG view box the region paths are drawn in.
func (t *Table) ViewBox() string { return t.viewBox }

// Regions returns a copy of the regions in table order.
func (t *Table) Regions() []domain.Region {
	out := make([]domain.Region, len(t.regions))
	for i, r := range t.regions {
		r.Aliases = t.Aliases(r.Name)
		out[i] = r
	}
	return out
}

// Names returns the canonical region names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.regions))
	for i, r := range t.regions {
		out[i] = r.Name
	}
	return out
}

// ByID returns the region with the given id.
func (t *Table) ByID(id string) (domain.Region, bool) {
	i, ok := t.byID[id]
	if !ok {
		return domain.Region{}, false
	}
	r := t.regions[i]
	r.Aliases = t.Aliases(r.Name)
	return r, true
}

// Aliases returns the labels accepted for the named region. A region without an
// explicit alias entry, including a name the table does not know, accepts only
// its own name.
func (t *Table) Aliases(regionName string) []string {
	if i, ok := t.byName[regionName]; ok {
		return t.aliasesOf(t.regions[i])
	}
	return []string{regionName}
}

func (t *Table) aliasesOf(r domain.Region) []string {
	if len(r.Aliases) == 0 {
		return []string{r.Name}
	}
	return append([]string(nil), r.Aliases...)
}

// Matches reports whether a district label denotes the named region.
func (t *Table) Matches(district, regionName string) bool {
	d := Normalize(district)
	for _, a := range t.Aliases(regionName) {
		if Normalize(a) == d {
			return true
		}
	}
	return false
}

// RegionFor returns the region a district label denotes, if any.
func (t *Table) RegionFor(district string) (domain.Region, bool) {
	i, ok := t.owner[Normalize(district)]
	if !ok {
		return domain.Region{}, false
	}
	r := t.regions[i]
	r.Aliases = t.Aliases(r.Name)
	return r, true
}

// PersonsIn returns, in input order, the persons whose district denotes the
// named region. The result is never nil.
func (t *Table) PersonsIn(persons []*domain.Ambassador, regionName string) []*domain.Ambassador {
	accepted := t.normalizedAliases(regionName)
	out := make([]*domain.Ambassador, 0)
	for _, p := range persons {
		if p == nil {
			continue
		}
		if _, ok := accepted[Normalize(p.District)]; ok {
			out = append(out, p)
		}
	}
	return out
}

// HasAny reports whether any person's district denotes the named region. It
// stops at the first match.
func (t *Table) HasAny(persons []*domain.Ambassador, regionName string) bool {
	accepted := t.normalizedAliases(regionName)
	for _, p := range persons {
		if p == nil {
			continue
		}
		if _, ok := accepted[Normalize(p.District)]; ok {
			return true
		}
	}
	return false
}

func (t *Table) normalizedAliases(regionName string) map[string]struct{} {
	aliases := t.Aliases(regionName)
	set := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		set[Normalize(a)] = struct{}{}
	}
	return set
}
