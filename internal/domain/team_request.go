package domain

import (
	"context"
	"time"
)

// TeamRequestStatusPending is the status of a freshly submitted team request.
const TeamRequestStatusPending = "PENDING"

// OtherRole is the "other" option in the roles picker; it is stored as
// "Boshqa: <free text>" when the founder describes the role.
const OtherRole = "Boshqa"

// TeamRequest is a founder's request for people to join a startup team.
// swagger:model TeamRequest
type TeamRequest struct {
	ID          string    `json:"id"`
	StartupName string    `json:"startup_name"`
	FounderName string    `json:"founder_name"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email"`
	Telegram    *string   `json:"telegram"`
	Description string    `json:"description"`
	RolesNeeded []string  `json:"roles_needed"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamRequestInput is the submitted form.
type TeamRequestInput struct {
	StartupName string
	FounderName string
	Phone       string
	Email       string
	Telegram    string
	Description string
	RolesNeeded []string
	OtherRole   string
	Message     string
}

// TeamRequestRepository stores team requests.
type TeamRequestRepository interface {
	Create(ctx context.Context, req *TeamRequest) error
}

// TeamRequestService validates and records team requests.
type TeamRequestService interface {
	Submit(ctx context.Context, in TeamRequestInput) (*TeamRequest, error)
}
