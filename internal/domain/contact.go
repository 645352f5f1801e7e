package domain

import (
	"context"
	"time"
)

// ContactStatusNew is the status of an unanswered contact submission.
const ContactStatusNew = "NEW"

// ContactSubmission is a message left through the contact form.
// swagger:model ContactSubmission
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is the submitted contact form.
type ContactInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// ContactSubmissionRepository stores contact submissions.
type ContactSubmissionRepository interface {
	Create(ctx context.Context, s *ContactSubmission) error
}

// ContactService validates and records contact submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*ContactSubmission, error)
}
