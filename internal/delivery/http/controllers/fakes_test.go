package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testEventID = "3f6c1d2e-8b4a-4c1f-9e2d-7a5b6c8d9e01"

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw), "response must be valid JSON envelope")
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return helpers.APIResponse{Data: data, Error: raw.Error}
}

type fakeEventService struct {
	events      []*domain.Event
	gotType     string
	gotForm     domain.RegistrationForm
	gotEventID  string
	registerReg *domain.Registration
	registerEv  *domain.Event
	err         error
}

func (f *fakeEventService) List(ctx context.Context, eventType string) ([]*domain.Event, error) {
	f.gotType = eventType
	return f.events, f.err
}

func (f *fakeEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) Register(ctx context.Context, eventID string, form domain.RegistrationForm) (*domain.Registration, *domain.Event, error) {
	f.gotEventID = eventID
	f.gotForm = form
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.registerReg, f.registerEv, nil
}

func (f *fakeEventService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	return nil, f.err
}

type fakeAmbassadorService struct {
	ambassadors []*domain.Ambassador
	teams       []*domain.Team
	gotQuery    string
	gotDistrict string
	err         error
}

func (f *fakeAmbassadorService) Search(ctx context.Context, query, district string) ([]*domain.Ambassador, error) {
	f.gotQuery, f.gotDistrict = query, district
	return f.ambassadors, f.err
}

func (f *fakeAmbassadorService) TeamTree(ctx context.Context) ([]*domain.Team, error) {
	return f.teams, f.err
}

func (f *fakeAmbassadorService) Districts() []string {
	return []string{"Barchasi", "Chilonzor"}
}

type fakeMapService struct {
	regions []*domain.RegionSummary
	detail  *domain.RegionDetail
	err     error
}

func (f *fakeMapService) Regions(ctx context.Context) ([]*domain.RegionSummary, error) {
	return f.regions, f.err
}

func (f *fakeMapService) Region(ctx context.Context, regionID string) (*domain.RegionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.ID != regionID {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

type fakeBlogService struct {
	posts     []*domain.BlogPost
	total     int
	gotParams domain.PaginationParams
	detail    *domain.BlogPostDetail
	err       error
}

func (f *fakeBlogService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.BlogPost, int, error) {
	f.gotParams = params
	return f.posts, f.total, f.err
}

func (f *fakeBlogService) Get(ctx context.Context, slugOrID string) (*domain.BlogPostDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.Post.Slug == nil || *f.detail.Post.Slug != slugOrID {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

type fakePartnerService struct {
	network *domain.Network
	err     error
}

func (f *fakePartnerService) Network(ctx context.Context) (*domain.Network, error) {
	return f.network, f.err
}

type fakeJobListingService struct {
	board    *domain.JobBoard
	gotQuery string
	gotRole  string
	err      error
}

func (f *fakeJobListingService) Search(ctx context.Context, query, role string) (*domain.JobBoard, error) {
	f.gotQuery, f.gotRole = query, role
	return f.board, f.err
}

type fakeTeamRequestService struct {
	got domain.TeamRequestInput
	err error
}

func (f *fakeTeamRequestService) Submit(ctx context.Context, in domain.TeamRequestInput) (*domain.TeamRequest, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.TeamRequest{ID: "tr-1", StartupName: in.StartupName, RolesNeeded: in.RolesNeeded, Status: domain.TeamRequestStatusPending}, nil
}

type fakeContactService struct {
	got domain.ContactInput
	err error
}

func (f *fakeContactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactSubmission, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ContactSubmission{ID: "c-1", Name: in.Name, Message: in.Message, Status: domain.ContactStatusNew}, nil
}

type fakeAssistantService struct {
	reply string
	err   error
}

func (f *fakeAssistantService) Ask(ctx context.Context, message string) (string, error) {
	return f.reply, f.err
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
