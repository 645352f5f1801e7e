package postgres

import (
	"context"
	"database/sql"
	"errors"

	"startupambassadors/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The (event_id, phone) unique index turns a
// lost race between two submissions into domain.ErrAlreadyRegistered.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, name, phone, district, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.Name, reg.Phone, reg.District, stringPtrArg(reg.Email), reg.CreatedAt).
		Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByEventAndPhone(ctx context.Context, eventID, phone string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, name, phone, district, email, created_at
		FROM registrations
		WHERE event_id = $1 AND phone = $2
	`
	reg := &domain.Registration{}
	var email sql.NullString
	err := r.DB.QueryRowContext(ctx, query, eventID, phone).
		Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.Phone, &reg.District, &email, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	reg.Email = nullStringPtr(email)
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, name, phone, district, email, created_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var email sql.NullString
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.Phone, &reg.District, &email, &reg.CreatedAt); err != nil {
			return nil, err
		}
		reg.Email = nullStringPtr(email)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
