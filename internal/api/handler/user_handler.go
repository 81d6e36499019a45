package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wildwall/wall-api/internal/api/metrics"
	"github.com/wildwall/wall-api/internal/core/ports"
)

// UserHandler handles account routes. Register is public; the admin routes
// are gated by the Authorize middleware in the router.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /users/register.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Username and password"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "new user " + user.Username + " created"})
}

// List handles GET /users. Admin only.
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}   userSummaryResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userSummaryResponse, len(users))
	for i, u := range users {
		resp[i] = userSummaryResponse{UserID: u.UserID, Username: u.Username, Role: u.Role}
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /users/:id. Admin or self.
//
// @Summary      Get one account
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), ident, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.RoleName(),
		RoleCode: string(user.RoleCode),
	})
}

// UpdateRole handles PUT /users/:id. Admin only.
//
// @Summary      Change an account's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role name"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateRole(c.Request().Context(), id, req.Role.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "update successful"})
}

// Delete handles DELETE /users/:id. Admin only.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
