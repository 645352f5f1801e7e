package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// TeamRequestRequest is the request body for POST /team-requests.
type TeamRequestRequest struct {
	StartupName string   `json:"startup_name"`
	FounderName string   `json:"founder_name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Telegram    string   `json:"telegram"`
	Description string   `json:"description"`
	RolesNeeded []string `json:"roles_needed"`
	OtherRole   string   `json:"other_role"`
	Message     string   `json:"message"`
}

// Validate implements Validator.
func (req TeamRequestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.StartupName) == "" {
		errs = append(errs, "startup_name is required")
	}
	if strings.TrimSpace(req.FounderName) == "" {
		errs = append(errs, "founder_name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "description is required")
	}
	if len(req.RolesNeeded) == 0 {
		errs = append(errs, "roles_needed must not be empty")
	}
	return errs
}

// TeamRequestSuccessResponse is the success response envelope for POST /team-requests (201).
type TeamRequestSuccessResponse struct {
	Data  *domain.TeamRequest `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (req ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		errs = append(errs, "phone or email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ContactSuccessResponse is the success response envelope for POST /contact (201).
type ContactSuccessResponse struct {
	Data  *domain.ContactSubmission `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type TeamRequestController struct {
	Logger  *slog.Logger
	Service domain.TeamRequestService
}

func NewTeamRequestController(logger *slog.Logger, svc domain.TeamRequestService) *TeamRequestController {
	return &TeamRequestController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Ask for team members
// @Description Records a founder's request for people. Picking "Boshqa" with other_role stores "Boshqa: <other_role>". The request is published on the job board after review.
// @Tags team-requests
// @Accept json
// @Produce json
// @Param request body TeamRequestRequest true "Team request"
// @Success 201 {object} controllers.TeamRequestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /team-requests [post]
func (c *TeamRequestController) Submit(w http.ResponseWriter, r *http.Request) {
	var req TeamRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Submit(r.Context(), domain.TeamRequestInput{
		StartupName: req.StartupName,
		FounderName: req.FounderName,
		Phone:       req.Phone,
		Email:       req.Email,
		Telegram:    req.Telegram,
		Description: req.Description,
		RolesNeeded: req.RolesNeeded,
		OtherRole:   req.OtherRole,
		Message:     req.Message,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Contact the organisers
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 201 {object} controllers.ContactSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Submit(r.Context(), domain.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}
