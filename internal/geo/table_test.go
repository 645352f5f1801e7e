package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupambassadors/internal/domain"
)

func TestDefault_LoadsTashkentDistricts(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	names := tbl.Names()
	require.Len(t, names, 12)
	assert.Contains(t, names, "Chilonzor")
	assert.Contains(t, names, "Mirzo Ulug'bek")
	assert.Equal(t, "0 0 402 435", tbl.ViewBox())

	for _, r := range tbl.Regions() {
		assert.NotEmpty(t, r.Path, "region %s has no geometry", r.ID)
		assert.NotEmpty(t, r.Aliases, "region %s has no accepted labels", r.ID)
	}
}

// No label may be accepted by two regions, otherwise a person would be shown
// in the wrong district.
func TestDefault_AliasSetsAreDisjoint(t *testing.T) {
	tbl := MustDefault()
	require.NoError(t, tbl.Validate())

	regions := tbl.Regions()
	for i, r1 := range regions {
		for _, r2 := range regions[i+1:] {
			for _, a1 := range r1.Aliases {
				for _, a2 := range r2.Aliases {
					assert.NotEqual(t, Normalize(a1), Normalize(a2),
						"regions %q and %q both accept %q", r1.Name, r2.Name, a1)
				}
			}
		}
	}
}

func TestNewTable_RejectsSharedAlias(t *testing.T) {
	_, err := NewTable("", []domain.Region{
		{ID: "a", Name: "Chilonzor", Aliases: []string{"Chilonzor", "Chilanzar"}},
		{ID: "b", Name: "Uchtepa", Aliases: []string{"Uchtepa", " CHILANZAR "}},
	})
	require.ErrorIs(t, err, ErrAliasConflict)
}

func TestNewTable_RejectsImplicitAliasClash(t *testing.T) {
	_, err := NewTable("", []domain.Region{
		{ID: "a", Name: "Sergeli"},
		{ID: "b", Name: "New Sergeli", Aliases: []string{"sergeli"}},
	})
	require.ErrorIs(t, err, ErrAliasConflict)
}

func TestNewTable_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewTable("", []domain.Region{
		{ID: "a", Name: "One"},
		{ID: "a", Name: "Two"},
	})
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("regions: [unterminated"))
	require.Error(t, err)
}

func TestAliases(t *testing.T) {
	tbl := MustDefault()

	assert.Equal(t, []string{"Chilonzor", "Chilanzar"}, tbl.Aliases("Chilonzor"))
	assert.Equal(t, []string{"Sergeli"}, tbl.Aliases("Sergeli"), "no explicit entry falls back to the name")
	assert.Equal(t, []string{"Atlantis"}, tbl.Aliases("Atlantis"), "unknown region accepts only its own name")
}

func TestMatches(t *testing.T) {
	tbl := MustDefault()

	tests := []struct {
		district string
		region   string
		want     bool
	}{
		{"Chilonzor", "Chilonzor", true},
		{"Chilanzar", "Chilonzor", true},
		{"  chilanzar ", "Chilonzor", true},
		{"Mirzo Ulugbek", "Mirzo Ulug'bek", true},
		{"Chilon", "Chilonzor", false},
		{"Chilonzor tumani", "Chilonzor", false},
		{"Chilonzor", "Uchtepa", false},
		{"", "Sergeli", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tbl.Matches(tt.district, tt.region), "%q in %q", tt.district, tt.region)
	}
}

func TestPersonsIn(t *testing.T) {
	tbl := MustDefault()
	persons := []*domain.Ambassador{
		{ID: "1", District: "Chilonzor"},
		{ID: "2", District: "Yunusobod"},
		{ID: "3", District: "chilanzar"},
		nil,
		{ID: "4", District: "Chilonzor district"},
	}

	got := tbl.PersonsIn(persons, "Chilonzor")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.True(t, tbl.HasAny(persons, "Chilonzor"))
	assert.True(t, tbl.HasAny(persons, "Yunusobod"))
	assert.False(t, tbl.HasAny(persons, "Bektemir"))

	none := tbl.PersonsIn(persons, "Bektemir")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRegionFor(t *testing.T) {
	tbl := MustDefault()

	r, ok := tbl.RegionFor(" MIRZO ULUGBEK")
	require.True(t, ok)
	assert.Equal(t, "mirzo_ulugbek", r.ID)

	_, ok = tbl.RegionFor("Samarqand")
	assert.False(t, ok)
}

func TestByID(t *testing.T) {
	tbl := MustDefault()

	r, ok := tbl.ByID("chilonzor")
	require.True(t, ok)
	assert.Equal(t, "Chilonzor", r.Name)
	assert.Equal(t, []string{"Chilonzor", "Chilanzar"}, r.Aliases)

	_, ok = tbl.ByID("missing")
	assert.False(t, ok)
}
