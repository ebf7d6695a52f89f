package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// TimeclockHandler handles the shift and break transition endpoints.
// Successful transitions return 202 with no body; precondition failures
// surface as 409 via the central error handler.
type TimeclockHandler struct {
	service ports.TimeclockService
}

func NewTimeclockHandler(service ports.TimeclockService) *TimeclockHandler {
	return &TimeclockHandler{service: service}
}

// StartShift handles POST /user/:userId/startShift.
//
// @Summary      Start a work shift
// @Tags         timeclock
// @Param        userId  path  string  true  "User identifier"
// @Success      202
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user/{userId}/startShift [post]
func (h *TimeclockHandler) StartShift(c echo.Context) error {
	if err := h.service.StartShift(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

// EndShift handles POST /user/:userId/endShift.
//
// @Summary      End the active work shift
// @Tags         timeclock
// @Param        userId  path  string  true  "User identifier"
// @Success      202
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user/{userId}/endShift [post]
func (h *TimeclockHandler) EndShift(c echo.Context) error {
	if err := h.service.EndShift(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

// StartBreak handles POST /user/:userId/startBreak. The breakType query
// parameter defaults to a short break when omitted.
//
// @Summary      Start a break
// @Tags         timeclock
// @Param        userId     path   string  true   "User identifier"
// @Param        breakType  query  string  false  "Break type"  Enums(Break, Lunch)
// @Success      202
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user/{userId}/startBreak [post]
func (h *TimeclockHandler) StartBreak(c echo.Context) error {
	var q startBreakQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	breakType := domain.BreakTypeShort
	if q.BreakType != "" {
		breakType = domain.BreakType(q.BreakType)
	}

	if err := h.service.StartBreak(c.Request().Context(), c.Param("userId"), breakType); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

// EndBreak handles POST /user/:userId/endBreak. It takes no break type:
// when both a short break and a lunch are active the short break is the one
// that ends.
//
// @Summary      End the active break
// @Tags         timeclock
// @Param        userId  path  string  true  "User identifier"
// @Success      202
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user/{userId}/endBreak [post]
func (h *TimeclockHandler) EndBreak(c echo.Context) error {
	if err := h.service.EndBreak(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}
