package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// AskRequest is the request body for POST /assistant/messages.
type AskRequest struct {
	Message string `json:"message"`
}

// Validate implements Validator.
func (req AskRequest) Validate() []string {
	if strings.TrimSpace(req.Message) == "" {
		return []string{"message is required"}
	}
	return nil
}

// AskResponse is the assistant's reply.
type AskResponse struct {
	Reply string `json:"reply"`
}

// AskSuccessResponse is the success response envelope for POST /assistant/messages (200).
type AskSuccessResponse struct {
	Data  AskResponse       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AssistantController struct {
	Logger  *slog.Logger
	Service domain.AssistantService
}

func NewAssistantController(logger *slog.Logger, svc domain.AssistantService) *AssistantController {
	return &AssistantController{Logger: logger, Service: svc}
}

// Ask godoc
// @Summary Ask the AI mentor
// @Description Answers questions about startups and the club. Each message is answered on its own; no history is kept.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} controllers.AskSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 503 {object} helpers.APIResponse "error.code: assistant_unavailable"
// @Router /assistant/messages [post]
func (c *AssistantController) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reply, err := c.Service.Ask(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AskResponse{Reply: reply})
}
