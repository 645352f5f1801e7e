package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"startupambassadors/internal/delivery/http/controllers"
	"startupambassadors/internal/delivery/http/middleware"
	"startupambassadors/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type okPinger struct{}

func (okPinger) PingContext(ctx context.Context) error { return nil }

type stubContactService struct{}

func (stubContactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactSubmission, error) {
	return &domain.ContactSubmission{ID: "c-1", Name: in.Name, Message: in.Message, Status: domain.ContactStatusNew}, nil
}

type panickingEventService struct{ domain.EventService }

func (panickingEventService) List(ctx context.Context, eventType string) ([]*domain.Event, error) {
	panic(errors.New("boom"))
}

func newTestRouter(limiter *middleware.RateLimiter) http.Handler {
	return NewRouter(RouterDeps{
		Logger:         testLogger,
		AllowedOrigins: []string{"https://ambassadors.uz"},
		RateLimiter:    limiter,
		Ambassadors:    controllers.NewAmbassadorController(testLogger, nil),
		Map:            controllers.NewMapController(testLogger, nil, ""),
		Events:         controllers.NewEventController(testLogger, panickingEventService{}),
		Blog:           controllers.NewBlogController(testLogger, nil),
		Partners:       controllers.NewPartnerController(testLogger, nil),
		Jobs:           controllers.NewJobListingController(testLogger, nil),
		TeamRequests:   controllers.NewTeamRequestController(testLogger, nil),
		Contact:        controllers.NewContactController(testLogger, stubContactService{}),
		Assistant:      controllers.NewAssistantController(testLogger, nil),
		Health:         controllers.NewHealthController(testLogger, okPinger{}),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://ambassadors.uz")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://ambassadors.uz", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRouter_RateLimitsPosts(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(0.001, 1))
	body := `{"name":"Aziza","phone":"+998901234567","message":"Salom"}`

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.RemoteAddr = "192.0.2.10:1234"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusCreated, post().Code)
	rr := post()
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "too_many_requests")
}

func TestRouter_Swagger(t *testing.T) {
	router := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
