package controllers

import (
	"log/slog"
	"net/http"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// RegionListResponse is the map payload: the SVG view box and every region.
type RegionListResponse struct {
	ViewBox string                  `json:"view_box"`
	Regions []*domain.RegionSummary `json:"regions"`
}

// RegionListSuccessResponse is the success response envelope for GET /map/regions (200).
type RegionListSuccessResponse struct {
	Data  RegionListResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RegionSuccessResponse is the success response envelope for GET /map/regions/{regionID} (200).
type RegionSuccessResponse struct {
	Data  *domain.RegionDetail `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type MapController struct {
	Logger  *slog.Logger
	Service domain.MapService
	ViewBox string
}

func NewMapController(logger *slog.Logger, svc domain.MapService, viewBox string) *MapController {
	return &MapController{
		Logger:  logger,
		Service: svc,
		ViewBox: viewBox,
	}
}

// ListRegions godoc
// @Summary Map regions
// @Description Every district with its SVG path, alias set and ambassador count.
// @Tags map
// @Produce json
// @Success 200 {object} controllers.RegionListSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /map/regions [get]
func (c *MapController) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := c.Service.Regions(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegionListResponse{ViewBox: c.ViewBox, Regions: regions})
}

// GetRegion godoc
// @Summary Region detail
// @Description The ambassadors whose district denotes the region (hover card).
// @Tags map
// @Produce json
// @Param regionID path string true "Region ID, e.g. chilonzor"
// @Success 200 {object} controllers.RegionSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /map/regions/{regionID} [get]
func (c *MapController) GetRegion(w http.ResponseWriter, r *http.Request) {
	detail, err := c.Service.Region(r.Context(), r.PathValue("regionID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "region not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}
