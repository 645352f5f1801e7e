package domain

import (
	"context"
	"time"
)

// Event types offered by the program.
const (
	EventTypeMasterclass = "Masterclass"
	EventTypeWorkshop    = "Workshop"
	EventTypeMeetup      = "Meetup"
	EventTypePitchDay    = "Pitch Day"
)

// Event is a scheduled program event. Capacity is nil for events without a seat
// limit. RegisteredCount is derived from the registrations table when read.
// swagger:model Event
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Image           *string   `json:"image"`
	Capacity        *int      `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsFull reports whether the event has a capacity and it is used up.
func (e *Event) IsFull() bool {
	return e.Capacity != nil && e.RegisteredCount >= *e.Capacity
}

// SeatsLeft returns the number of free seats, or nil when the event is unlimited.
func (e *Event) SeatsLeft() *int {
	if e.Capacity == nil {
		return nil
	}
	left := *e.Capacity - e.RegisteredCount
	if left < 0 {
		left = 0
	}
	return &left
}

// EventRepository defines read access to events.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// EventService defines the event listing and registration operations.
type EventService interface {
	List(ctx context.Context, eventType string) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	// Register runs one registration attempt. The returned event carries the
	// optimistically incremented registered count.
	Register(ctx context.Context, eventID string, form RegistrationForm) (*Registration, *Event, error)
	ListRegistrations(ctx context.Context, eventID string) ([]*Registration, error)
}
