package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pastelpay/landing-api/internal/core/ports"
)

// BlogHandler serves the public blog listing.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List returns all published posts.
//
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}   blogResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBlogListResponse(posts))
}
