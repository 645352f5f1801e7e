package domain

import "context"

// Partner types.
const (
	PartnerTypeVentureFund = "VENTURE_FUND"
	PartnerTypeMentor      = "MENTOR"
)

// Partner is a venture fund or a mentor in the program network.
// swagger:model Partner
type Partner struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	Type        string  `json:"type"`
	Role        *string `json:"role"`
	Expertise   *string `json:"expertise"`
	Telegram    *string `json:"telegram"`
	Linkedin    *string `json:"linkedin"`
}

// Network groups partners by type.
// swagger:model Network
type Network struct {
	VentureFunds []*Partner `json:"venture_funds"`
	Mentors      []*Partner `json:"mentors"`
}

// PartnerRepository reads partners.
type PartnerRepository interface {
	List(ctx context.Context) ([]*Partner, error)
}

// PartnerService serves the network page.
type PartnerService interface {
	Network(ctx context.Context) (*Network, error)
}
