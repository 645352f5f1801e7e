package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"startupambassadors/internal/domain"
)

type teamRequestService struct {
	teamRequestRepo domain.TeamRequestRepository
	emailService    domain.EmailService
	notifyEmail     string
	logger          *slog.Logger
	contextTimeout  time.Duration
}

// NewTeamRequestService returns a TeamRequestService. notifyEmail is the
// organisers' inbox; when empty no notification is sent.
func NewTeamRequestService(teamRequestRepo domain.TeamRequestRepository, emailService domain.EmailService, notifyEmail string, logger *slog.Logger, timeout time.Duration) domain.TeamRequestService {
	return &teamRequestService{
		teamRequestRepo: teamRequestRepo,
		emailService:    emailService,
		notifyEmail:     notifyEmail,
		logger:          logger,
		contextTimeout:  timeout,
	}
}

func (s *teamRequestService) Submit(ctx context.Context, in domain.TeamRequestInput) (*domain.TeamRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	req, err := newTeamRequest(in, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.teamRequestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create team request: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.logger.InfoContext(ctx, "team request created", "team_request_id", req.ID)

	if s.notifyEmail != "" {
		data := &domain.TeamRequestNotificationEmailData{
			To:          s.notifyEmail,
			StartupName: req.StartupName,
			FounderName: req.FounderName,
			Phone:       req.Phone,
			Roles:       req.RolesNeeded,
			Description: req.Description,
		}
		if err := s.emailService.SendTeamRequestNotification(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "team request notification not sent", "team_request_id", req.ID, "err", err)
		}
	}
	return req, nil
}

func newTeamRequest(in domain.TeamRequestInput, now time.Time) (*domain.TeamRequest, error) {
	var problems []string
	startup := strings.TrimSpace(in.StartupName)
	if startup == "" {
		problems = append(problems, "startup_name is required")
	}
	founder := strings.TrimSpace(in.FounderName)
	if founder == "" {
		problems = append(problems, "founder_name is required")
	}
	phone, ok := NormalizePhone(in.Phone)
	if !ok {
		problems = append(problems, "phone must be a valid Uzbek number (+998XXXXXXXXX)")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		problems = append(problems, "description is required")
	}
	email := optionalString(in.Email)
	if email != nil && !validEmail(*email) {
		problems = append(problems, "email is not valid")
	}
	roles := finalRoles(in.RolesNeeded, in.OtherRole)
	if len(roles) == 0 {
		problems = append(problems, "at least one role is required")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	return &domain.TeamRequest{
		StartupName: startup,
		FounderName: founder,
		Phone:       phone,
		Email:       email,
		Telegram:    optionalString(in.Telegram),
		Description: description,
		RolesNeeded: roles,
		Message:     optionalString(in.Message),
		Status:      domain.TeamRequestStatusPending,
		CreatedAt:   now,
	}, nil
}

// finalRoles trims and dedupes the picked roles and expands the "other"
// option with its free-text description.
func finalRoles(picked []string, other string) []string {
	other = strings.TrimSpace(other)
	seen := make(map[string]struct{}, len(picked))
	out := make([]string, 0, len(picked))
	for _, r := range picked {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if r == domain.OtherRole && other != "" {
			r = domain.OtherRole + ": " + other
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
