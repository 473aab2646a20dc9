package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vestineo/news-blog-api/internal/model"
	"github.com/vestineo/news-blog-api/internal/repository/mongodb"
)

// PostStore is the slice of the repository the post handlers need.
type PostStore interface {
	Create(ctx context.Context, post model.Post) (model.Post, error)
	GetByID(ctx context.Context, id string) (model.Post, error)
	List(ctx context.Context, page, limit int64) ([]model.Post, error)
	Count(ctx context.Context) (int64, error)
	ListByCategory(ctx context.Context, category string, page, limit int64) ([]model.Post, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	ListByAuthor(ctx context.Context, author string, page, limit int64) ([]model.Post, error)
	CountByAuthor(ctx context.Context, author string) (int64, error)
	Search(ctx context.Context, text string) ([]model.Post, error)
}

type PostHandler struct {
	store PostStore
}

// PostsResponse bundles one page of posts with the matching total.
type PostsResponse struct {
	Posts []model.PostJSON `json:"posts"`
	Total int64            `json:"total"`
}

func NewPostHandler(store PostStore) *PostHandler {
	return &PostHandler{store: store}
}

// Hello is the liveness/greeting endpoint.
func (h *PostHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, "Hello from the news API")
}

// CreatePost inserts a new post and returns it with the assigned id.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.PostJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	post, err := req.ToStored()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.Create(c.Request.Context(), post)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, created.ToWire())
}

// GetPost returns a single post by its hex id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.String(http.StatusBadRequest, "invalid ID")
		return
	}

	post, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		c.String(storeErrStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, post.ToWire())
}

// ListPosts returns one page of posts plus the unfiltered total.
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, limit, err := pageParams(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	posts, err := h.store.List(c.Request.Context(), page, limit)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	total, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, PostsResponse{Posts: toWire(posts), Total: total})
}

// PostsByCategory returns a prefix-filtered page plus the filtered total.
func (h *PostHandler) PostsByCategory(c *gin.Context) {
	h.listFiltered(c, c.Param("query"), h.store.ListByCategory, h.store.CountByCategory)
}

// PostsByAuthor is symmetric to PostsByCategory, over the author field.
func (h *PostHandler) PostsByAuthor(c *gin.Context) {
	h.listFiltered(c, c.Param("query"), h.store.ListByAuthor, h.store.CountByAuthor)
}

// SearchPosts returns full-text matches ordered by descending relevance.
func (h *PostHandler) SearchPosts(c *gin.Context) {
	posts, err := h.store.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toWire(posts))
}

func (h *PostHandler) listFiltered(
	c *gin.Context,
	query string,
	list func(ctx context.Context, q string, page, limit int64) ([]model.Post, error),
	count func(ctx context.Context, q string) (int64, error),
) {
	page, limit, err := pageParams(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	posts, err := list(c.Request.Context(), query, page, limit)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	total, err := count(c.Request.Context(), query)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, PostsResponse{Posts: toWire(posts), Total: total})
}

// pageParams parses the required page/limit query parameters.
func pageParams(c *gin.Context) (page, limit int64, err error) {
	page, err = strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("invalid page")
	}
	limit, err = strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("invalid limit")
	}
	return page, limit, nil
}

func toWire(posts []model.Post) []model.PostJSON {
	out := make([]model.PostJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ToWire())
	}
	return out
}

func storeErrStatus(err error) int {
	switch {
	case errors.Is(err, mongodb.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, mongodb.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
