package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbassadorController_List(t *testing.T) {
	fake := &fakeAmbassadorService{ambassadors: []*domain.Ambassador{{ID: "a-1", Name: "Aziza"}}}
	ctrl := NewAmbassadorController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/ambassadors?q=azi&district=Chilonzor", nil)
	rr := httptest.NewRecorder()
	ctrl.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "azi", fake.gotQuery)
	assert.Equal(t, "Chilonzor", fake.gotDistrict)
	var got []domain.Ambassador
	decodeEnvelope(t, rr, &got)
	require.Len(t, got, 1)
}

func TestAmbassadorController_List_EmptyIsArray(t *testing.T) {
	ctrl := NewAmbassadorController(testLogger, &fakeAmbassadorService{ambassadors: []*domain.Ambassador{}})

	rr := httptest.NewRecorder()
	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/ambassadors?q=zzz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}

func TestAmbassadorController_TeamTreeAndDistricts(t *testing.T) {
	fake := &fakeAmbassadorService{teams: []*domain.Team{{Name: "Media"}}}
	ctrl := NewAmbassadorController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.TeamTree(rr, httptest.NewRequest(http.MethodGet, "/ambassadors/team", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var teams []domain.Team
	decodeEnvelope(t, rr, &teams)
	require.Len(t, teams, 1)
	assert.Equal(t, "Media", teams[0].Name)

	rr = httptest.NewRecorder()
	ctrl.Districts(rr, httptest.NewRequest(http.MethodGet, "/ambassadors/districts", nil))
	var districts []string
	decodeEnvelope(t, rr, &districts)
	assert.Equal(t, []string{"Barchasi", "Chilonzor"}, districts)
}

func TestMapController(t *testing.T) {
	fake := &fakeMapService{
		regions: []*domain.RegionSummary{{Region: domain.Region{ID: "chilonzor", Name: "Chilonzor", Path: "M0 0"}, MemberCount: 2, HasAmbassadors: true}},
		detail:  &domain.RegionDetail{Region: domain.Region{ID: "chilonzor", Name: "Chilonzor"}, Ambassadors: []*domain.Ambassador{{ID: "a-1"}}},
	}
	ctrl := NewMapController(testLogger, fake, "0 0 402 435")

	rr := httptest.NewRecorder()
	ctrl.ListRegions(rr, httptest.NewRequest(http.MethodGet, "/map/regions", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var list RegionListResponse
	decodeEnvelope(t, rr, &list)
	assert.Equal(t, "0 0 402 435", list.ViewBox)
	require.Len(t, list.Regions, 1)
	assert.True(t, list.Regions[0].HasAmbassadors)

	req := httptest.NewRequest(http.MethodGet, "/map/regions/chilonzor", nil)
	req.SetPathValue("regionID", "chilonzor")
	rr = httptest.NewRecorder()
	ctrl.GetRegion(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail domain.RegionDetail
	decodeEnvelope(t, rr, &detail)
	assert.Equal(t, "Chilonzor", detail.Name)
	require.Len(t, detail.Ambassadors, 1)

	req = httptest.NewRequest(http.MethodGet, "/map/regions/samarkand", nil)
	req.SetPathValue("regionID", "samarkand")
	rr = httptest.NewRecorder()
	ctrl.GetRegion(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	env := decodeEnvelope(t, rr, nil)
	assert.Equal(t, helpers.ErrCodeNotFound, env.Error.Code)
}

func TestMapController_StoreError(t *testing.T) {
	ctrl := NewMapController(testLogger, &fakeMapService{err: domain.ErrStoreUnavailable}, "")
	rr := httptest.NewRecorder()
	ctrl.ListRegions(rr, httptest.NewRequest(http.MethodGet, "/map/regions", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestBlogController_List(t *testing.T) {
	fake := &fakeBlogService{posts: []*domain.BlogPost{{ID: "p-1", Title: "First"}}, total: 19}
	ctrl := NewBlogController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/blog?page=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: helpers.DefaultPageSize}, fake.gotParams)
	var resp BlogListResponse
	decodeEnvelope(t, rr, &resp)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 9, Total: 19, TotalPages: 3}, resp.Pagination)
}

func TestBlogController_Get(t *testing.T) {
	fake := &fakeBlogService{detail: &domain.BlogPostDetail{
		Post:    &domain.BlogPost{ID: "p-1", Slug: strPtr("hello"), ContentHTML: "<p>hi</p>"},
		Related: []*domain.BlogPost{},
	}}
	ctrl := NewBlogController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/blog/hello", nil)
	req.SetPathValue("slug", "hello")
	rr := httptest.NewRecorder()
	ctrl.Get(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail domain.BlogPostDetail
	decodeEnvelope(t, rr, &detail)
	assert.Equal(t, "<p>hi</p>", detail.Post.ContentHTML)

	req = httptest.NewRequest(http.MethodGet, "/blog/missing", nil)
	req.SetPathValue("slug", "missing")
	rr = httptest.NewRecorder()
	ctrl.Get(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPartnerController_Network(t *testing.T) {
	ctrl := NewPartnerController(testLogger, &fakePartnerService{network: &domain.Network{
		VentureFunds: []*domain.Partner{{ID: "f-1"}},
		Mentors:      []*domain.Partner{},
	}})
	rr := httptest.NewRecorder()
	ctrl.Network(rr, httptest.NewRequest(http.MethodGet, "/partners", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var n domain.Network
	decodeEnvelope(t, rr, &n)
	require.Len(t, n.VentureFunds, 1)

	ctrl = NewPartnerController(testLogger, &fakePartnerService{err: errors.New("boom")})
	rr = httptest.NewRecorder()
	ctrl.Network(rr, httptest.NewRequest(http.MethodGet, "/partners", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr, nil)
	assert.Equal(t, "internal server error", env.Error.Message)
}

func TestJobListingController_List(t *testing.T) {
	fake := &fakeJobListingService{board: &domain.JobBoard{Listings: []*domain.JobListing{{ID: "j-1"}}, Roles: []string{"Backend"}}}
	ctrl := NewJobListingController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/jobs?q=agro&role=Backend", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "agro", fake.gotQuery)
	assert.Equal(t, "Backend", fake.gotRole)
	var board domain.JobBoard
	decodeEnvelope(t, rr, &board)
	assert.Equal(t, []string{"Backend"}, board.Roles)
}
