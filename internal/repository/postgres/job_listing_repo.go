package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"startupambassadors/internal/domain"
)

type jobListingRepository struct {
	DB *sql.DB
}

func NewJobListingRepository(db *sql.DB) domain.JobListingRepository {
	return &jobListingRepository{
		DB: db,
	}
}

func (r *jobListingRepository) ListApproved(ctx context.Context) ([]*domain.JobListing, error) {
	query := `
		SELECT id, startup_name, founder_name, phone, telegram, email, description, roles_needed, message, status, created_at
		FROM job_listings
		WHERE status = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.JobListingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*domain.JobListing, 0)
	for rows.Next() {
		l := &domain.JobListing{}
		var telegram, email, message sql.NullString
		var roles pq.StringArray
		if err := rows.Scan(&l.ID, &l.StartupName, &l.FounderName, &l.Phone, &telegram, &email, &l.Description, &roles, &message, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Telegram = nullStringPtr(telegram)
		l.Email = nullStringPtr(email)
		l.Message = nullStringPtr(message)
		l.RolesNeeded = []string(roles)
		if l.RolesNeeded == nil {
			l.RolesNeeded = []string{}
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
