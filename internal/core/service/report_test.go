package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// seedAdmin inserts an administrator with id "admin".
func seedAdmin(repo *stubUserRepo) {
	admin := domain.NewUser("admin")
	admin.Role = domain.RoleAdministrator
	repo.seed(admin)
}

// workerWithShifts builds a non-administrator whose completed shifts start
// at the given times.
func workerWithShifts(id string, starts ...time.Time) *domain.User {
	u := domain.NewUser(id)
	u.Role = domain.RoleNonAdministrator
	for _, start := range starts {
		end := start.Add(8 * time.Hour)
		u.PriorWorkShifts = append(u.PriorWorkShifts, domain.WorkShift{StartTime: start, EndTime: &end})
	}
	return u
}

func TestUserActivity_AdminNotFound(t *testing.T) {
	svc := newTestService(newStubUserRepo(), newFakeClock())

	_, err := svc.UserActivity(context.Background(), "ghost", ports.ReportFilters{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserActivity_DeniedForNonAdministrator(t *testing.T) {
	repo := newStubUserRepo()
	worker := domain.NewUser("123")
	worker.Role = domain.RoleNonAdministrator
	repo.seed(worker)

	svc := newTestService(repo, newFakeClock())

	_, err := svc.UserActivity(context.Background(), "123", ports.ReportFilters{})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserActivity_DeniedWhenRoleUnset(t *testing.T) {
	repo := newStubUserRepo()
	// A user with no role at all is treated as a non-administrator.
	repo.seed(domain.NewUser("123"))

	svc := newTestService(repo, newFakeClock())

	_, err := svc.UserActivity(context.Background(), "123", ports.ReportFilters{})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserActivity_NoFiltersReturnsEveryone(t *testing.T) {
	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(domain.NewUser("123"))
	repo.seed(domain.NewUser("456"))

	svc := newTestService(repo, newFakeClock())

	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if len(report) != 3 {
		t.Fatalf("expected 3 users (admin included), got %d", len(report))
	}
}

func TestUserActivity_UserIDFilter(t *testing.T) {
	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(domain.NewUser("123"))
	repo.seed(domain.NewUser("456"))

	svc := newTestService(repo, newFakeClock())

	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{UserID: "123"})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("expected exactly 1 user, got %d", len(report))
	}
	if _, ok := report["123"]; !ok {
		t.Fatalf("expected user 123 in report")
	}
}

func TestUserActivity_RoleFilter(t *testing.T) {
	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(domain.NewUser("123")) // no role
	worker := domain.NewUser("456")
	worker.Role = domain.RoleNonAdministrator
	repo.seed(worker)

	svc := newTestService(repo, newFakeClock())

	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{Role: domain.RoleNonAdministrator})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("expected 1 user, got %d", len(report))
	}
	if _, ok := report["456"]; !ok {
		t.Fatalf("expected user 456 in report")
	}
}

func TestUserActivity_ShiftCountThreshold(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(workerWithShifts("one-shift", t0))
	repo.seed(workerWithShifts("two-shifts", t0, t0.Add(24*time.Hour)))

	svc := newTestService(repo, newFakeClock())

	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{PriorWorkShiftsThreshold: 2})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}

	if _, ok := report["one-shift"]; ok {
		t.Fatalf("user with 1 shift must be excluded by threshold 2")
	}
	if _, ok := report["two-shifts"]; !ok {
		t.Fatalf("user with exactly 2 shifts must be included by threshold 2")
	}
}

func TestUserActivity_BreakCountThreshold(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	end := t0.Add(15 * time.Minute)

	repo := newStubUserRepo()
	seedAdmin(repo)
	rested := domain.NewUser("rested")
	rested.PriorBreaks = []domain.Break{{StartTime: t0, BreakType: domain.BreakTypeShort, EndTime: &end}}
	repo.seed(rested)
	repo.seed(domain.NewUser("no-breaks"))

	svc := newTestService(repo, newFakeClock())

	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{PriorBreaksThreshold: 1})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if _, ok := report["no-breaks"]; ok {
		t.Fatalf("user without breaks must be excluded")
	}
	if _, ok := report["rested"]; !ok {
		t.Fatalf("user with 1 break must be included")
	}
}

func TestUserActivity_OnBreakAndOnLunchFilters(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	repo := newStubUserRepo()
	seedAdmin(repo)

	onBreak := domain.NewUser("on-break")
	onBreak.CurrentWorkShift = &domain.WorkShift{StartTime: now.Add(-4 * time.Hour)}
	onBreak.CurrentBreak = &domain.Break{StartTime: now, BreakType: domain.BreakTypeShort}
	repo.seed(onBreak)

	onLunch := domain.NewUser("on-lunch")
	onLunch.CurrentWorkShift = &domain.WorkShift{StartTime: now.Add(-4 * time.Hour)}
	onLunch.CurrentLunchBreak = &domain.Break{StartTime: now, BreakType: domain.BreakTypeLunch}
	repo.seed(onLunch)

	svc := newTestService(repo, newFakeClock())
	ctx := context.Background()

	report, err := svc.UserActivity(ctx, "admin", ports.ReportFilters{CurrentlyOnBreak: true})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("expected only the short-break user, got %d users", len(report))
	}
	if _, ok := report["on-break"]; !ok {
		t.Fatalf("expected on-break user")
	}

	report, err = svc.UserActivity(ctx, "admin", ports.ReportFilters{CurrentlyOnLunch: true})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("expected only the lunch user, got %d users", len(report))
	}
	if _, ok := report["on-lunch"]; !ok {
		t.Fatalf("expected on-lunch user")
	}
}

func TestUserActivity_ShiftPruningIsStrictAndPostFilter(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	repo := newStubUserRepo()
	seedAdmin(repo)
	// User "123" has completed shifts starting at T0 and T0+1h.
	repo.seed(workerWithShifts("123", t0, t0.Add(time.Hour)))

	svc := newTestService(repo, newFakeClock())

	// Bound at T0+30m with threshold 2: the threshold counts before
	// pruning, so the user survives even though only one shift is shown.
	bound := t0.Add(30 * time.Minute)
	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{
		PriorWorkShiftsThreshold: 2,
		ShiftBeginsBefore:        &bound,
	})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}

	user, ok := report["123"]
	if !ok {
		t.Fatalf("user must pass threshold counted before pruning")
	}
	if len(user.PriorWorkShifts) != 1 {
		t.Fatalf("expected shift list pruned to 1, got %d", len(user.PriorWorkShifts))
	}
	if !user.PriorWorkShifts[0].StartTime.Equal(t0) {
		t.Fatalf("expected the T0 shift to survive, got start %v", user.PriorWorkShifts[0].StartTime)
	}

	// The bound is strict: a shift starting exactly at the bound is pruned.
	exact := t0
	report, err = svc.UserActivity(context.Background(), "admin", ports.ReportFilters{
		UserID:            "123",
		ShiftBeginsBefore: &exact,
	})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if got := len(report["123"].PriorWorkShifts); got != 0 {
		t.Fatalf("strictly-before bound at T0 must prune the T0 shift, got %d", got)
	}
}

func TestUserActivity_ShiftBeginsAfterPruning(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(workerWithShifts("123", t0, t0.Add(time.Hour)))

	svc := newTestService(repo, newFakeClock())

	after := t0.Add(30 * time.Minute)
	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{
		UserID:           "123",
		ShiftBeginsAfter: &after,
	})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}

	shifts := report["123"].PriorWorkShifts
	if len(shifts) != 1 || !shifts[0].StartTime.Equal(t0.Add(time.Hour)) {
		t.Fatalf("expected only the T0+1h shift, got %v", shifts)
	}
}

func TestUserActivity_BreakPruning(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	e1 := t0.Add(15 * time.Minute)
	t1 := t0.Add(2 * time.Hour)
	e2 := t1.Add(30 * time.Minute)

	repo := newStubUserRepo()
	seedAdmin(repo)
	u := domain.NewUser("123")
	u.PriorBreaks = []domain.Break{
		{StartTime: t0, BreakType: domain.BreakTypeShort, EndTime: &e1},
		{StartTime: t1, BreakType: domain.BreakTypeLunch, EndTime: &e2},
	}
	repo.seed(u)

	svc := newTestService(repo, newFakeClock())

	before := t0.Add(time.Hour)
	report, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{
		UserID:            "123",
		BreakBeginsBefore: &before,
	})
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}

	breaks := report["123"].PriorBreaks
	if len(breaks) != 1 || breaks[0].BreakType != domain.BreakTypeShort {
		t.Fatalf("expected only the first break, got %v", breaks)
	}
}

func TestUserActivity_PruningDoesNotMutateStore(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	repo := newStubUserRepo()
	seedAdmin(repo)
	repo.seed(workerWithShifts("123", t0, t0.Add(time.Hour)))

	svc := newTestService(repo, newFakeClock())

	bound := t0.Add(30 * time.Minute)
	if _, err := svc.UserActivity(context.Background(), "admin", ports.ReportFilters{ShiftBeginsBefore: &bound}); err != nil {
		t.Fatalf("UserActivity: %v", err)
	}

	if got := len(repo.stored(t, "123").PriorWorkShifts); got != 2 {
		t.Fatalf("report pruning leaked into the store: %d shifts left", got)
	}
}
