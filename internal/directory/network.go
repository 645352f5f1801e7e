package directory

import "startupambassadors/internal/domain"

// SplitPartners separates venture funds from mentors. Partners of any other
// type are left out.
func SplitPartners(partners []*domain.Partner) *domain.Network {
	n := &domain.Network{
		VentureFunds: []*domain.Partner{},
		Mentors:      []*domain.Partner{},
	}
	for _, p := range partners {
		if p == nil {
			continue
		}
		switch p.Type {
		case domain.PartnerTypeVentureFund:
			n.VentureFunds = append(n.VentureFunds, p)
		case domain.PartnerTypeMentor:
			n.Mentors = append(n.Mentors, p)
		}
	}
	return n
}
