package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"startupambassadors/internal/directory"
	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
)

const eventDateLayout = "02.01.2006 15:04"

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	regions          *geo.Table
	emailService     domain.EmailService
	logger           *slog.Logger
	contextTimeout   time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	regions *geo.Table,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		regions:          regions,
		emailService:     emailService,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

// List returns the events of the given type; "Barchasi", "ALL" or "" return every event.
func (s *eventService) List(ctx context.Context, eventType string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if directory.IsAll(eventType) {
		return events, nil
	}
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Register(ctx context.Context, eventID string, form domain.RegistrationForm) (*domain.Registration, *domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w: %w", domain.ErrStoreUnavailable, err)
	}

	wf := NewRegistrationWorkflow(s.registrationRepo, s.regions, event)
	reg, err := wf.Submit(ctx, form)
	if err != nil {
		return nil, wf.Event(), err
	}
	s.logger.InfoContext(ctx, "registration created", "event_id", eventID, "registration_id", reg.ID)

	if reg.Email != nil {
		data := &domain.RegistrationConfirmationEmailData{
			Email:      *reg.Email,
			Name:       reg.Name,
			EventTitle: event.Title,
			EventDate:  event.Date.Format(eventDateLayout),
			Location:   event.Location,
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "registration confirmation not sent", "event_id", eventID, "err", err)
		}
	}
	return reg, wf.Event(), nil
}

func (s *eventService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
