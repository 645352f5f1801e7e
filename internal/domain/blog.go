package domain

import (
	"context"
	"time"
)

// BlogPost is a published article. Content is Markdown; ContentHTML is the
// rendered, sanitized body and is only filled on detail reads.
// swagger:model BlogPost
type BlogPost struct {
	ID          string    `json:"id"`
	Slug        *string   `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	ContentHTML string    `json:"content_html,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	Author      string    `json:"author"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlogPostDetail is a post together with a few other posts to read next.
// swagger:model BlogPostDetail
type BlogPostDetail struct {
	Post    *BlogPost   `json:"post"`
	Related []*BlogPost `json:"related"`
}

// BlogPostRepository defines storage operations for blog posts.
type BlogPostRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*BlogPost, int, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	ListRelated(ctx context.Context, excludeID string, limit int) ([]*BlogPost, error)
	IncrementViews(ctx context.Context, id string) error
}

// MarkdownRenderer turns Markdown into safe HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// BlogService serves the blog list and detail pages.
type BlogService interface {
	List(ctx context.Context, params PaginationParams) ([]*BlogPost, int, error)
	Get(ctx context.Context, slugOrID string) (*BlogPostDetail, error)
}
