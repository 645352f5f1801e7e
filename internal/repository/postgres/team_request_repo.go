package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"startupambassadors/internal/domain"
)

type teamRequestRepository struct {
	DB *sql.DB
}

func NewTeamRequestRepository(db *sql.DB) domain.TeamRequestRepository {
	return &teamRequestRepository{
		DB: db,
	}
}

func (r *teamRequestRepository) Create(ctx context.Context, req *domain.TeamRequest) error {
	query := `
		INSERT INTO team_requests (startup_name, founder_name, phone, email, telegram, description, roles_needed, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		req.StartupName,
		req.FounderName,
		req.Phone,
		stringPtrArg(req.Email),
		stringPtrArg(req.Telegram),
		req.Description,
		pq.Array(req.RolesNeeded),
		stringPtrArg(req.Message),
		req.Status,
		req.CreatedAt,
	).Scan(&req.ID)
}
