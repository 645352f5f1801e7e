package controllers

import (
	"log/slog"
	"net/http"

	"startupambassadors/internal/delivery/http/helpers"
	"startupambassadors/internal/domain"
)

// BlogListResponse is a page of posts with pagination metadata.
type BlogListResponse struct {
	Posts      []*domain.BlogPost     `json:"posts"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// BlogListSuccessResponse is the success response envelope for GET /blog (200).
type BlogListSuccessResponse struct {
	Data  BlogListResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BlogPostSuccessResponse is the success response envelope for GET /blog/{slug} (200).
type BlogPostSuccessResponse struct {
	Data  *domain.BlogPostDetail `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type BlogController struct {
	Logger  *slog.Logger
	Service domain.BlogService
}

func NewBlogController(logger *slog.Logger, svc domain.BlogService) *BlogController {
	return &BlogController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Posts per page" default(9)
// @Success 200 {object} controllers.BlogListSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /blog [get]
func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	posts, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BlogListResponse{
		Posts:      posts,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// Get godoc
// @Summary Read a blog post
// @Description Looks the post up by slug, then by id. Counts a view and returns up to three related posts.
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug or ID"
// @Success 200 {object} controllers.BlogPostSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /blog/{slug} [get]
func (c *BlogController) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := c.Service.Get(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "post not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}
