package http

import (
	"log/slog"
	"net/http"

	"startupambassadors/internal/delivery/http/controllers"
	"startupambassadors/internal/delivery/http/middleware"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps carries the controllers and middleware settings for NewRouter.
type RouterDeps struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter

	Ambassadors  *controllers.AmbassadorController
	Map          *controllers.MapController
	Events       *controllers.EventController
	Blog         *controllers.BlogController
	Partners     *controllers.PartnerController
	Jobs         *controllers.JobListingController
	TeamRequests *controllers.TeamRequestController
	Contact      *controllers.ContactController
	Assistant    *controllers.AssistantController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it in the middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Directory and map
	mux.HandleFunc("GET /ambassadors", d.Ambassadors.List)
	mux.HandleFunc("GET /ambassadors/team", d.Ambassadors.TeamTree)
	mux.HandleFunc("GET /ambassadors/districts", d.Ambassadors.Districts)
	mux.HandleFunc("GET /map/regions", d.Map.ListRegions)
	mux.HandleFunc("GET /map/regions/{regionID}", d.Map.GetRegion)

	// Events
	mux.HandleFunc("GET /events", d.Events.List)
	mux.HandleFunc("GET /events/{eventID}", d.Events.Get)
	mux.HandleFunc("POST /events/{eventID}/registrations", d.Events.Register)

	// Content
	mux.HandleFunc("GET /blog", d.Blog.List)
	mux.HandleFunc("GET /blog/{slug}", d.Blog.Get)
	mux.HandleFunc("GET /partners", d.Partners.Network)
	mux.HandleFunc("GET /jobs", d.Jobs.List)

	// Submissions
	mux.HandleFunc("POST /team-requests", d.TeamRequests.Submit)
	mux.HandleFunc("POST /contact", d.Contact.Submit)
	mux.HandleFunc("POST /assistant/messages", d.Assistant.Ask)

	mux.HandleFunc("GET /health", d.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	if d.RateLimiter != nil {
		h = d.RateLimiter.Middleware(h)
	}
	h = middleware.CORS(d.AllowedOrigins, h)
	h = middleware.LoggingMiddleware(d.Logger, h)
	h = chimiddleware.Recoverer(h)
	h = chimiddleware.RealIP(h)
	h = chimiddleware.RequestID(h)
	return h
}
