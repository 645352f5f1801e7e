package domain

import (
	"context"
	"time"
)

// Registration links a registrant's contact details to an event. At most one
// registration exists per (event, phone).
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	District  string    `json:"district"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration returns a Registration for the given event. ID is set by the repository on create.
func NewRegistration(eventID, name, phone, district string, email *string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		Name:      name,
		Phone:     phone,
		District:  district,
		Email:     email,
		CreatedAt: createdAt,
	}
}

// RegistrationForm is the registrant input as typed into the form.
type RegistrationForm struct {
	Name     string
	Phone    string
	District string
	Email    string
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	// GetByEventAndPhone returns ErrNotFound when no registration exists.
	GetByEventAndPhone(ctx context.Context, eventID, phone string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
}
