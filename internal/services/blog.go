package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"startupambassadors/internal/domain"
)

const (
	defaultBlogPageSize = 9
	maxBlogPageSize     = 50
	relatedPostsLimit   = 3
)

type blogService struct {
	blogRepo       domain.BlogPostRepository
	renderer       domain.MarkdownRenderer
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewBlogService(blogRepo domain.BlogPostRepository, renderer domain.MarkdownRenderer, logger *slog.Logger, timeout time.Duration) domain.BlogService {
	return &blogService{
		blogRepo:       blogRepo,
		renderer:       renderer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *blogService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.BlogPost, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultBlogPageSize
	}
	if params.PageSize > maxBlogPageSize {
		params.PageSize = maxBlogPageSize
	}
	posts, total, err := s.blogRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, total, nil
}

// Get looks a post up by slug, then by id. Reading a post counts a view; a
// failed view update is logged and does not fail the read.
func (s *blogService) Get(ctx context.Context, slugOrID string) (*domain.BlogPostDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	post, err := s.lookup(ctx, slugOrID)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(post.Content)
	if err != nil {
		return nil, fmt.Errorf("render blog post: %w", err)
	}
	post.ContentHTML = html

	var related []*domain.BlogPost
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.blogRepo.IncrementViews(gctx, post.ID); err != nil {
			s.logger.WarnContext(gctx, "blog view not counted", "post_id", post.ID, "err", err)
			return nil
		}
		post.Views++
		return nil
	})
	g.Go(func() error {
		var err error
		related, err = s.blogRepo.ListRelated(gctx, post.ID, relatedPostsLimit)
		if err != nil {
			return fmt.Errorf("list related posts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if related == nil {
		related = []*domain.BlogPost{}
	}
	return &domain.BlogPostDetail{Post: post, Related: related}, nil
}

func (s *blogService) lookup(ctx context.Context, slugOrID string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slugOrID)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	if _, perr := uuid.Parse(slugOrID); perr != nil {
		return nil, domain.ErrNotFound
	}
	post, err = s.blogRepo.GetByID(ctx, slugOrID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return post, nil
}
