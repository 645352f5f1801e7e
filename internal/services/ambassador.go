package services

import (
	"context"
	"fmt"
	"time"

	"startupambassadors/internal/directory"
	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
)

type ambassadorService struct {
	ambassadorRepo domain.AmbassadorRepository
	regions        *geo.Table
	contextTimeout time.Duration
}

func NewAmbassadorService(ambassadorRepo domain.AmbassadorRepository, regions *geo.Table, timeout time.Duration) domain.AmbassadorService {
	return &ambassadorService{
		ambassadorRepo: ambassadorRepo,
		regions:        regions,
		contextTimeout: timeout,
	}
}

func (s *ambassadorService) Search(ctx context.Context, query, district string) ([]*domain.Ambassador, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.ambassadorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ambassadors: %w", err)
	}
	return directory.Filter(all, query, district), nil
}

func (s *ambassadorService) TeamTree(ctx context.Context) ([]*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	all, err := s.ambassadorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ambassadors: %w", err)
	}
	return directory.GroupTeams(all), nil
}

// Districts returns the category options of the directory filter.
func (s *ambassadorService) Districts() []string {
	names := s.regions.Names()
	out := make([]string, 0, len(names)+1)
	out = append(out, directory.AllCategoryLabel)
	return append(out, names...)
}
