package services

import (
	"context"
	"fmt"
	"time"

	"startupambassadors/internal/directory"
	"startupambassadors/internal/domain"
)

type partnerService struct {
	partnerRepo    domain.PartnerRepository
	contextTimeout time.Duration
}

func NewPartnerService(partnerRepo domain.PartnerRepository, timeout time.Duration) domain.PartnerService {
	return &partnerService{partnerRepo: partnerRepo, contextTimeout: timeout}
}

func (s *partnerService) Network(ctx context.Context) (*domain.Network, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return directory.SplitPartners(partners), nil
}
