package services

import (
	"context"
	"fmt"
	"time"

	"startupambassadors/internal/directory"
	"startupambassadors/internal/domain"
)

type jobListingService struct {
	jobRepo        domain.JobListingRepository
	contextTimeout time.Duration
}

func NewJobListingService(jobRepo domain.JobListingRepository, timeout time.Duration) domain.JobListingService {
	return &jobListingService{jobRepo: jobRepo, contextTimeout: timeout}
}

// Search filters approved listings. Roles always lists every role of every
// approved listing so the filter options do not shrink as the user narrows.
func (s *jobListingService) Search(ctx context.Context, query, role string) (*domain.JobBoard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	listings, err := s.jobRepo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job listings: %w", err)
	}
	return &domain.JobBoard{
		Listings: directory.FilterJobListings(listings, query, role),
		Roles:    directory.JobRoles(listings),
	}, nil
}
