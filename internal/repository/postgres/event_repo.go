package postgres

import (
	"context"
	"database/sql"
	"errors"

	"startupambassadors/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// registered_count is derived, so the store stays the single source of truth.
const eventColumns = `
	e.id, e.title, e.description, e.date, e.location, e.type, e.image, e.capacity,
	(SELECT COUNT(*) FROM registrations r WHERE r.event_id = e.id) AS registered_count,
	e.created_at
`

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, imageNull sql.NullString
	var capNull sql.NullInt64
	if err := row.Scan(
		&e.ID, &e.Title, &descNull, &e.Date, &e.Location, &e.Type, &imageNull, &capNull,
		&e.RegisteredCount, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Description = nullStringPtr(descNull)
	e.Image = nullStringPtr(imageNull)
	if capNull.Valid {
		c := int(capNull.Int64)
		e.Capacity = &c
	}
	return e, nil
}
