package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// UserHandler handles HTTP requests for the user lifecycle.
type UserHandler struct {
	service ports.TimeclockService
}

func NewUserHandler(service ports.TimeclockService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /user/:userId.
//
// @Summary      Create a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User identifier"
// @Success      201     {object}  domain.User
// @Failure      409     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /user/{userId} [post]
func (h *UserHandler) Create(c echo.Context) error {
	userID := c.Param("userId")

	user, err := h.service.CreateUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/user/"+userID)
	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /user/:userId.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User identifier"
// @Success      200     {object}  domain.User
// @Failure      404     {object}  map[string]string
// @Router       /user/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.FindUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles POST /user/:userId/update. Both parameters are optional;
// an absent parameter leaves the stored value unchanged.
//
// @Summary      Update a user's name and role
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true   "User identifier"
// @Param        name    query     string  false  "New display name"
// @Param        role    query     string  false  "New role"  Enums(Administrator, NonAdministrator)
// @Success      202     {object}  domain.User
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /user/{userId}/update [post]
func (h *UserHandler) Update(c echo.Context) error {
	var q updateUserQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateUserInput{UserID: c.Param("userId")}
	if c.QueryParams().Has("name") {
		input.Name = &q.Name
	}
	if q.Role != "" {
		role := domain.Role(q.Role)
		input.Role = &role
	}

	user, err := h.service.UpdateUser(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, user)
}
