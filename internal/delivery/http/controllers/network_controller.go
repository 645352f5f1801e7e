package controllers

import (
	"log/slog"
	"net/http"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// NetworkSuccessResponse is the success response envelope for GET /partners (200).
type NetworkSuccessResponse struct {
	Data  *domain.Network   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// JobBoardSuccessResponse is the success response envelope for GET /jobs (200).
type JobBoardSuccessResponse struct {
	Data  *domain.JobBoard  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type PartnerController struct {
	Logger  *slog.Logger
	Service domain.PartnerService
}

func NewPartnerController(logger *slog.Logger, svc domain.PartnerService) *PartnerController {
	return &PartnerController{Logger: logger, Service: svc}
}

// Network godoc
// @Summary Partner network
// @Description Venture funds and mentors.
// @Tags network
// @Produce json
// @Success 200 {object} controllers.NetworkSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /partners [get]
func (c *PartnerController) Network(w http.ResponseWriter, r *http.Request) {
	network, err := c.Service.Network(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, network)
}

type JobListingController struct {
	Logger  *slog.Logger
	Service domain.JobListingService
}

func NewJobListingController(logger *slog.Logger, svc domain.JobListingService) *JobListingController {
	return &JobListingController{Logger: logger, Service: svc}
}

// List godoc
// @Summary Job board
// @Description Approved team requests filtered by query and role, plus every role available for filtering.
// @Tags jobs
// @Produce json
// @Param q query string false "Free-text query"
// @Param role query string false "Needed role"
// @Success 200 {object} controllers.JobBoardSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /jobs [get]
func (c *JobListingController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	board, err := c.Service.Search(r.Context(), q.Get("q"), q.Get("role"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, board)
}
