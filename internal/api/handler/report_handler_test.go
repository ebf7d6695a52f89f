package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

func TestReportHandler_UserActivity_PassesFilters(t *testing.T) {
	var gotAdmin string
	var gotFilters ports.ReportFilters
	stub := &stubTimeclockService{
		userActivityFn: func(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
			gotAdmin = adminUserID
			gotFilters = filters
			return map[string]*domain.User{}, nil
		},
	}
	h := NewReportHandler(stub)

	query := url.Values{}
	query.Set("userIdToView", "anna")
	query.Set("priorWorkShiftsThreshold", "3")
	query.Set("priorBreaksThreshold", "2")
	query.Set("isCurrentlyOnBreak", "true")
	query.Set("roleToView", "NonAdministrator")
	query.Set("shiftBeginsBefore", "2024-03-02 17:00")
	query.Set("shiftBeginsAfter", "2024-03-01 08:30")

	c, rec := newTestContext(t, http.MethodGet, "/admin/bob/userActivity?"+query.Encode())
	c.SetPath("/admin/:adminUserId/userActivity")
	c.SetParamNames("adminUserId")
	c.SetParamValues("bob")

	if err := h.UserActivity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if gotAdmin != "bob" {
		t.Fatalf("unexpected admin id: %s", gotAdmin)
	}
	if gotFilters.UserID != "anna" || gotFilters.PriorWorkShiftsThreshold != 3 || gotFilters.PriorBreaksThreshold != 2 {
		t.Fatalf("unexpected filters: %+v", gotFilters)
	}
	if !gotFilters.CurrentlyOnBreak || gotFilters.CurrentlyOnLunch {
		t.Fatalf("unexpected break flags: %+v", gotFilters)
	}
	if gotFilters.Role != domain.RoleNonAdministrator {
		t.Fatalf("unexpected role filter: %q", gotFilters.Role)
	}

	wantBefore := time.Date(2024, 3, 2, 17, 0, 0, 0, time.UTC)
	if gotFilters.ShiftBeginsBefore == nil || !gotFilters.ShiftBeginsBefore.Equal(wantBefore) {
		t.Fatalf("unexpected shiftBeginsBefore: %+v", gotFilters.ShiftBeginsBefore)
	}
	wantAfter := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	if gotFilters.ShiftBeginsAfter == nil || !gotFilters.ShiftBeginsAfter.Equal(wantAfter) {
		t.Fatalf("unexpected shiftBeginsAfter: %+v", gotFilters.ShiftBeginsAfter)
	}
	if gotFilters.BreakBeginsBefore != nil || gotFilters.BreakBeginsAfter != nil {
		t.Fatalf("expected nil break bounds, got %+v", gotFilters)
	}
}

func TestReportHandler_UserActivity_ReturnsReportBody(t *testing.T) {
	stub := &stubTimeclockService{
		userActivityFn: func(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
			anna := domain.NewUser("anna")
			anna.Name = "Anna"
			return map[string]*domain.User{"anna": anna}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/bob/userActivity")
	c.SetPath("/admin/:adminUserId/userActivity")
	c.SetParamNames("adminUserId")
	c.SetParamValues("bob")

	if err := h.UserActivity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["anna"]["name"] != "Anna" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestReportHandler_UserActivity_MalformedTimestamp(t *testing.T) {
	stub := &stubTimeclockService{
		userActivityFn: func(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewReportHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/admin/bob/userActivity?shiftBeginsBefore=yesterday")
	c.SetPath("/admin/:adminUserId/userActivity")
	c.SetParamNames("adminUserId")
	c.SetParamValues("bob")

	err := h.UserActivity(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestReportHandler_UserActivity_UnknownRoleFilter(t *testing.T) {
	stub := &stubTimeclockService{
		userActivityFn: func(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewReportHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/admin/bob/userActivity?roleToView=Manager")
	c.SetPath("/admin/:adminUserId/userActivity")
	c.SetParamNames("adminUserId")
	c.SetParamValues("bob")

	err := h.UserActivity(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestReportHandler_UserActivity_AccessDenied(t *testing.T) {
	stub := &stubTimeclockService{
		userActivityFn: func(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
			return nil, domain.ErrAccessDenied
		},
	}
	h := NewReportHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/admin/anna/userActivity")
	c.SetPath("/admin/:adminUserId/userActivity")
	c.SetParamNames("adminUserId")
	c.SetParamValues("anna")

	if err := h.UserActivity(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
