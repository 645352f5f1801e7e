package postgres

import (
	"context"
	"database/sql"

	"startupambassadors/internal/domain"
)

type contactSubmissionRepository struct {
	DB *sql.DB
}

func NewContactSubmissionRepository(db *sql.DB) domain.ContactSubmissionRepository {
	return &contactSubmissionRepository{
		DB: db,
	}
}

func (r *contactSubmissionRepository) Create(ctx context.Context, s *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, phone, email, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.Name, stringPtrArg(s.Phone), stringPtrArg(s.Email), s.Message, s.Status, s.CreatedAt).
		Scan(&s.ID)
}
