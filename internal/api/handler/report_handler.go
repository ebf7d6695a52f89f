package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// ReportHandler handles the administrator activity report.
type ReportHandler struct {
	service ports.TimeclockService
}

func NewReportHandler(service ports.TimeclockService) *ReportHandler {
	return &ReportHandler{service: service}
}

// UserActivity handles GET /admin/:adminUserId/userActivity.
//
// @Summary      Query user activity with filters
// @Tags         admin
// @Produce      json
// @Param        adminUserId               path   string  true   "Acting administrator's user identifier"
// @Param        userIdToView              query  string  false  "Only this user"
// @Param        priorWorkShiftsThreshold  query  int     false  "Minimum completed shifts"
// @Param        priorBreaksThreshold      query  int     false  "Minimum completed breaks"
// @Param        isCurrentlyOnBreak        query  bool    false  "Only users currently on a short break"
// @Param        isCurrentlyOnLunch        query  bool    false  "Only users currently on lunch"
// @Param        roleToView                query  string  false  "Only this role"  Enums(Administrator, NonAdministrator)
// @Param        shiftBeginsBefore         query  string  false  "Trim shifts starting at/after this time (yyyy-MM-dd HH:mm)"
// @Param        shiftBeginsAfter          query  string  false  "Trim shifts starting at/before this time (yyyy-MM-dd HH:mm)"
// @Param        breakBeginsBefore         query  string  false  "Trim breaks starting at/after this time (yyyy-MM-dd HH:mm)"
// @Param        breakBeginsAfter          query  string  false  "Trim breaks starting at/before this time (yyyy-MM-dd HH:mm)"
// @Success      200  {object}  map[string]domain.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/{adminUserId}/userActivity [get]
func (h *ReportHandler) UserActivity(c echo.Context) error {
	var q userActivityQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filters := ports.ReportFilters{
		UserID:                   q.UserIDToView,
		PriorWorkShiftsThreshold: q.PriorWorkShiftsThreshold,
		PriorBreaksThreshold:     q.PriorBreaksThreshold,
		CurrentlyOnBreak:         q.IsCurrentlyOnBreak,
		CurrentlyOnLunch:         q.IsCurrentlyOnLunch,
		Role:                     domain.Role(q.RoleToView),
	}

	var err error
	if filters.ShiftBeginsBefore, err = parseTimeParam("shiftBeginsBefore", q.ShiftBeginsBefore); err != nil {
		return err
	}
	if filters.ShiftBeginsAfter, err = parseTimeParam("shiftBeginsAfter", q.ShiftBeginsAfter); err != nil {
		return err
	}
	if filters.BreakBeginsBefore, err = parseTimeParam("breakBeginsBefore", q.BreakBeginsBefore); err != nil {
		return err
	}
	if filters.BreakBeginsAfter, err = parseTimeParam("breakBeginsAfter", q.BreakBeginsAfter); err != nil {
		return err
	}

	report, err := h.service.UserActivity(c.Request().Context(), c.Param("adminUserId"), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// parseTimeParam parses an optional timestamp query parameter in timeLayout.
func parseTimeParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must match %q", name, timeLayout))
	}
	return &t, nil
}
