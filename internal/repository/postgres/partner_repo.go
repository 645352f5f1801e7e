package postgres

import (
	"context"
	"database/sql"

	"startupambassadors/internal/domain"
)

type partnerRepository struct {
	DB *sql.DB
}

func NewPartnerRepository(db *sql.DB) domain.PartnerRepository {
	return &partnerRepository{
		DB: db,
	}
}

func (r *partnerRepository) List(ctx context.Context) ([]*domain.Partner, error) {
	query := `
		SELECT id, name, logo, description, website, type, role, expertise, telegram, linkedin
		FROM partners
		ORDER BY created_at ASC, name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]*domain.Partner, 0)
	for rows.Next() {
		p := &domain.Partner{}
		var logo, role, expertise, telegram, linkedin sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &logo, &p.Description, &p.Website, &p.Type, &role, &expertise, &telegram, &linkedin); err != nil {
			return nil, err
		}
		p.Logo = nullStringPtr(logo)
		p.Role = nullStringPtr(role)
		p.Expertise = nullStringPtr(expertise)
		p.Telegram = nullStringPtr(telegram)
		p.Linkedin = nullStringPtr(linkedin)
		partners = append(partners, p)
	}
	return partners, rows.Err()
}
