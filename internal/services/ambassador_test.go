package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAmbassadors() []*domain.Ambassador {
	return []*domain.Ambassador{
		{ID: "a-1", Name: "Aziza Karimova", District: "Chilonzor", Role: "Team lead", Team: "Media", IsLeader: true},
		{ID: "a-2", Name: "Bekzod Aliyev", District: "chilanzar ", Role: "Designer", Team: "Media"},
		{ID: "a-3", Name: "Dilshod Rahimov", District: "Mirzo Ulugbek", Role: "Developer", Team: "Tech"},
		{ID: "a-4", Name: "Malika Yusupova", District: "Toshkent viloyati", Role: "Mentor"},
	}
}

func TestAmbassadorService_Search(t *testing.T) {
	repo := &fakeAmbassadorRepo{ambassadors: sampleAmbassadors()}
	svc := NewAmbassadorService(repo, geo.MustDefault(), time.Second)

	got, err := svc.Search(context.Background(), "media", "Barchasi")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a-1", got[0].ID)

	got, err = svc.Search(context.Background(), "", "Chilonzor")
	require.NoError(t, err)
	require.Len(t, got, 1, "category matches the district label exactly")

	got, err = svc.Search(context.Background(), "nobody", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAmbassadorService_Search_RepoError(t *testing.T) {
	svc := NewAmbassadorService(&fakeAmbassadorRepo{err: errors.New("db down")}, geo.MustDefault(), time.Second)
	_, err := svc.Search(context.Background(), "", "")
	require.Error(t, err)
}

func TestAmbassadorService_TeamTree(t *testing.T) {
	svc := NewAmbassadorService(&fakeAmbassadorRepo{ambassadors: sampleAmbassadors()}, geo.MustDefault(), time.Second)

	teams, err := svc.TeamTree(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Media", teams[0].Name)
	require.Len(t, teams[0].Leaders, 1)
	assert.Equal(t, "a-1", teams[0].Leaders[0].ID)
	assert.Equal(t, "Tech", teams[1].Name)
}

func TestAmbassadorService_Districts(t *testing.T) {
	svc := NewAmbassadorService(&fakeAmbassadorRepo{}, geo.MustDefault(), time.Second)

	districts := svc.Districts()
	require.Len(t, districts, 13)
	assert.Equal(t, "Barchasi", districts[0])
	assert.Contains(t, districts, "Chilonzor")
}

func TestMapService_Regions(t *testing.T) {
	repo := &fakeAmbassadorRepo{ambassadors: sampleAmbassadors()}
	svc := NewMapService(repo, geo.MustDefault(), time.Second)

	regions, err := svc.Regions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 12)
	assert.Equal(t, 1, repo.calls)

	byID := make(map[string]*domain.RegionSummary, len(regions))
	for _, r := range regions {
		byID[r.ID] = r
		assert.NotEmpty(t, r.Path)
	}
	assert.Equal(t, 2, byID["chilonzor"].MemberCount)
	assert.True(t, byID["chilonzor"].HasAmbassadors)
	assert.Equal(t, 1, byID["mirzo_ulugbek"].MemberCount)
	assert.False(t, byID["sergeli"].HasAmbassadors)
	assert.Contains(t, byID["chilonzor"].Aliases, "Chilanzar")
}

func TestMapService_Region(t *testing.T) {
	svc := NewMapService(&fakeAmbassadorRepo{ambassadors: sampleAmbassadors()}, geo.MustDefault(), time.Second)

	detail, err := svc.Region(context.Background(), "chilonzor")
	require.NoError(t, err)
	assert.Equal(t, "Chilonzor", detail.Name)
	require.Len(t, detail.Ambassadors, 2)
	assert.Equal(t, "a-1", detail.Ambassadors[0].ID)
	assert.Equal(t, "a-2", detail.Ambassadors[1].ID)

	detail, err = svc.Region(context.Background(), "sergeli")
	require.NoError(t, err)
	assert.NotNil(t, detail.Ambassadors)
	assert.Empty(t, detail.Ambassadors)

	_, err = svc.Region(context.Background(), "samarkand")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
