package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wildwall/wall-api/internal/api/metrics"
	"github.com/wildwall/wall-api/internal/core/ports"
)

// PostHandler handles HTTP requests for wall posts. All routes sit behind the
// Session middleware; ownership/role checks happen in the service.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts — the active wall.
//
// @Summary      List active posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postsResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostsResponse(posts))
}

// ListArchived handles GET /posts/archived.
//
// @Summary      List archived posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postsResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts/archived [get]
func (h *PostHandler) ListArchived(c echo.Context) error {
	posts, err := h.service.ListArchived(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostsResponse(posts))
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  postDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postDetailResponse{Post: toPostResponse(post)})
}

// Create handles POST /posts. The note's owner is the authenticated caller;
// a userId in the payload is ignored.
//
// @Summary      Pin a new post to the wall
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post text and color"
// @Success      201   {object}  postDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ident, ports.CreatePostInput{
		Text:  req.Text,
		Color: req.Color,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(post.Color).Inc()
	return c.JSON(http.StatusCreated, postDetailResponse{Post: toPostResponse(post)})
}

// Edit handles PUT /posts/:id. Owner only.
//
// @Summary      Edit a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post id"
// @Param        body  body      updatePostRequest  true  "New text and color"
// @Success      200   {object}  postDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Edit(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Edit(c.Request().Context(), ident, id, ports.UpdatePostInput{
		Text:  req.Text,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postDetailResponse{Post: toPostResponse(post)})
}

// Archive handles PUT /posts/archive/:id. Owner, delegate or admin.
//
// @Summary      Archive a post
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/archive/{id} [put]
func (h *PostHandler) Archive(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Archive(c.Request().Context(), ident, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post archived"})
}

// Delete handles DELETE /posts/:id. Owner, delegate or admin.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
