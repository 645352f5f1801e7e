package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"startupambassadors/internal/domain"
)

type contactService struct {
	contactRepo    domain.ContactSubmissionRepository
	emailService   domain.EmailService
	notifyEmail    string
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewContactService(contactRepo domain.ContactSubmissionRepository, emailService domain.EmailService, notifyEmail string, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		contactRepo:    contactRepo,
		emailService:   emailService,
		notifyEmail:    notifyEmail,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var problems []string
	name := strings.TrimSpace(in.Name)
	if name == "" {
		problems = append(problems, "name is required")
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		problems = append(problems, "message is required")
	}
	var phone *string
	if strings.TrimSpace(in.Phone) != "" {
		p, ok := NormalizePhone(in.Phone)
		if !ok {
			problems = append(problems, "phone must be a valid Uzbek number (+998XXXXXXXXX)")
		} else {
			phone = &p
		}
	}
	email := optionalString(in.Email)
	if email != nil && !validEmail(*email) {
		problems = append(problems, "email is not valid")
	}
	if strings.TrimSpace(in.Phone) == "" && email == nil {
		problems = append(problems, "phone or email is required")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	sub := &domain.ContactSubmission{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Message:   message,
		Status:    domain.ContactStatusNew,
		CreatedAt: time.Now(),
	}
	if err := s.contactRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create contact submission: %w: %w", domain.ErrStoreUnavailable, err)
	}

	if s.notifyEmail != "" {
		data := &domain.ContactNotificationEmailData{
			To:      s.notifyEmail,
			Name:    sub.Name,
			Phone:   deref(sub.Phone),
			Email:   deref(sub.Email),
			Message: sub.Message,
		}
		if err := s.emailService.SendContactNotification(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "contact notification not sent", "contact_id", sub.ID, "err", err)
		}
	}
	return sub, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
