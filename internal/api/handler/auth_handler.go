package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// AuthHandler handles credential registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /auth/register. The user id must already exist;
// registration only binds a password to it.
//
// @Summary      Register credentials for an existing user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "User id and password"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Register(c.Request().Context(), req.UserID, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Login handles POST /auth/login and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
