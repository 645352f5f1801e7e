package controllers

import (
	"log/slog"
	"net/http"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// AmbassadorListSuccessResponse is the success response envelope for GET /ambassadors (200).
type AmbassadorListSuccessResponse struct {
	Data  []*domain.Ambassador `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// TeamTreeSuccessResponse is the success response envelope for GET /ambassadors/team (200).
type TeamTreeSuccessResponse struct {
	Data  []*domain.Team    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DistrictsSuccessResponse is the success response envelope for GET /ambassadors/districts (200).
type DistrictsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AmbassadorController struct {
	Logger  *slog.Logger
	Service domain.AmbassadorService
}

func NewAmbassadorController(logger *slog.Logger, svc domain.AmbassadorService) *AmbassadorController {
	return &AmbassadorController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary Search the ambassador directory
// @Description Filters ambassadors by a free-text query over name, role and team, and by district or team. District is matched exactly; "Barchasi" selects everyone.
// @Tags ambassadors
// @Produce json
// @Param q query string false "Free-text query"
// @Param district query string false "District or team label"
// @Success 200 {object} controllers.AmbassadorListSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /ambassadors [get]
func (c *AmbassadorController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ambassadors, err := c.Service.Search(r.Context(), q.Get("q"), q.Get("district"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ambassadors)
}

// TeamTree godoc
// @Summary Team tree
// @Description Teams in first-seen order, each with its leaders followed by members.
// @Tags ambassadors
// @Produce json
// @Success 200 {object} controllers.TeamTreeSuccessResponse
// @Router /ambassadors/team [get]
func (c *AmbassadorController) TeamTree(w http.ResponseWriter, r *http.Request) {
	teams, err := c.Service.TeamTree(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teams)
}

// Districts godoc
// @Summary District filter options
// @Tags ambassadors
// @Produce json
// @Success 200 {object} controllers.DistrictsSuccessResponse
// @Router /ambassadors/districts [get]
func (c *AmbassadorController) Districts(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Districts())
}
