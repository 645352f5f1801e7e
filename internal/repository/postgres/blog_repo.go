package postgres

import (
	"context"
	"database/sql"
	"errors"

	"startupambassadors/internal/domain"
)

type blogPostRepository struct {
	DB *sql.DB
}

func NewBlogPostRepository(db *sql.DB) domain.BlogPostRepository {
	return &blogPostRepository{
		DB: db,
	}
}

const blogSummaryColumns = `id, slug, title, excerpt, date, category, image, author, views, created_at`

func (r *blogPostRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.BlogPost, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + blogSummaryColumns + `
		FROM blog_posts
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanBlogSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *blogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *blogPostRepository) getOne(ctx context.Context, where string, arg string) (*domain.BlogPost, error) {
	query := `
		SELECT id, slug, title, excerpt, content, date, category, image, author, views, created_at
		FROM blog_posts
		` + where
	p := &domain.BlogPost{}
	var slug, image sql.NullString
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &slug, &p.Title, &p.Excerpt, &p.Content, &p.Date, &p.Category, &image, &p.Author, &p.Views, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Slug = nullStringPtr(slug)
	p.Image = nullStringPtr(image)
	return p, nil
}

func (r *blogPostRepository) ListRelated(ctx context.Context, excludeID string, limit int) ([]*domain.BlogPost, error) {
	query := `SELECT ` + blogSummaryColumns + `
		FROM blog_posts
		WHERE id <> $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBlogSummaries(rows)
}

func (r *blogPostRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE blog_posts SET views = views + 1 WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBlogSummaries(rows *sql.Rows) ([]*domain.BlogPost, error) {
	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		p := &domain.BlogPost{}
		var slug, image sql.NullString
		if err := rows.Scan(&p.ID, &slug, &p.Title, &p.Excerpt, &p.Date, &p.Category, &image, &p.Author, &p.Views, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Slug = nullStringPtr(slug)
		p.Image = nullStringPtr(image)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
