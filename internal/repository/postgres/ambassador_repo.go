package postgres

import (
	"context"
	"database/sql"

	"startupambassadors/internal/domain"
)

type ambassadorRepository struct {
	DB *sql.DB
}

func NewAmbassadorRepository(db *sql.DB) domain.AmbassadorRepository {
	return &ambassadorRepository{
		DB: db,
	}
}

func (r *ambassadorRepository) List(ctx context.Context) ([]*domain.Ambassador, error) {
	query := `
		SELECT id, name, district, role, team, image, telegram, linkedin, is_leader, created_at
		FROM ambassadors
		ORDER BY is_leader DESC, name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ambassadors := make([]*domain.Ambassador, 0)
	for rows.Next() {
		a := &domain.Ambassador{}
		var team, image, telegram, linkedin sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.District, &a.Role, &team, &image, &telegram, &linkedin, &a.IsLeader, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Team = team.String
		a.Image = nullStringPtr(image)
		a.Telegram = nullStringPtr(telegram)
		a.Linkedin = nullStringPtr(linkedin)
		ambassadors = append(ambassadors, a)
	}
	return ambassadors, rows.Err()
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func stringPtrArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
