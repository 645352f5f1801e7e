package services

import (
	"context"
	"fmt"
	"time"

	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
)

type mapService struct {
	ambassadorRepo domain.AmbassadorRepository
	regions        *geo.Table
	contextTimeout time.Duration
}

func NewMapService(ambassadorRepo domain.AmbassadorRepository, regions *geo.Table, timeout time.Duration) domain.MapService {
	return &mapService{
		ambassadorRepo: ambassadorRepo,
		regions:        regions,
		contextTimeout: timeout,
	}
}

// Regions annotates every region with its ambassador count from a single index build.
func (s *mapService) Regions(ctx context.Context) ([]*domain.RegionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.ambassadorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ambassadors: %w", err)
	}
	idx := s.regions.BuildIndex(all)

	regions := s.regions.Regions()
	out := make([]*domain.RegionSummary, 0, len(regions))
	for _, r := range regions {
		n := idx.Count(r.Name)
		out = append(out, &domain.RegionSummary{
			Region:         r,
			MemberCount:    n,
			HasAmbassadors: n > 0,
		})
	}
	return out, nil
}

func (s *mapService) Region(ctx context.Context, regionID string) (*domain.RegionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	region, ok := s.regions.ByID(regionID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	all, err := s.ambassadorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ambassadors: %w", err)
	}
	return &domain.RegionDetail{
		Region:      region,
		Ambassadors: s.regions.PersonsIn(all, region.Name),
	}, nil
}
