package domain

import (
	"context"
	"time"
)

// Job listing statuses. Only approved listings are shown publicly.
const (
	JobListingStatusPending  = "PENDING"
	JobListingStatusApproved = "APPROVED"
)

// JobListing is an approved team request published for job seekers.
// swagger:model JobListing
type JobListing struct {
	ID          string    `json:"id"`
	StartupName string    `json:"startup_name"`
	FounderName string    `json:"founder_name"`
	Phone       string    `json:"phone"`
	Telegram    *string   `json:"telegram"`
	Email       *string   `json:"email"`
	Description string    `json:"description"`
	RolesNeeded []string  `json:"roles_needed"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobBoard is the filtered listings plus every role available for filtering.
// swagger:model JobBoard
type JobBoard struct {
	Listings []*JobListing `json:"listings"`
	Roles    []string      `json:"roles"`
}

// JobListingRepository reads job listings.
type JobListingRepository interface {
	// ListApproved returns approved listings, newest first.
	ListApproved(ctx context.Context) ([]*JobListing, error)
}

// JobListingService serves the job board.
type JobListingService interface {
	Search(ctx context.Context, query, role string) (*JobBoard, error)
}
