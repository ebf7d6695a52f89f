package ports

import (
	"context"
	"time"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
)

// ReportFilters carries the optional predicates of an activity query.
// Constructed fresh per query, never persisted.
//
// The two threshold fields and the two boolean flags filter whole users out
// of the report; the four timestamp bounds only trim the history lists of
// users that survived filtering. Thresholds are checked against the
// untrimmed list sizes, so raising a threshold and narrowing a date range
// are independent, order-sensitive operations.
type ReportFilters struct {
	UserID                   string
	PriorWorkShiftsThreshold int
	PriorBreaksThreshold     int
	CurrentlyOnBreak         bool
	CurrentlyOnLunch         bool
	Role                     domain.Role

	// Strict bounds on interval start times. Nil means unbounded.
	ShiftBeginsBefore *time.Time
	ShiftBeginsAfter  *time.Time
	BreakBeginsBefore *time.Time
	BreakBeginsAfter  *time.Time
}

// UpdateUserInput carries a partial user update. Nil fields mean "leave
// unchanged".
type UpdateUserInput struct {
	UserID string
	Name   *string
	Role   *domain.Role
}

// TimeclockService defines the use-case operations of the time clock: user
// lifecycle, the per-user shift/break state machine, and the
// administrator-only activity report.
type TimeclockService interface {
	CreateUser(ctx context.Context, userID string) (*domain.User, error)
	FindUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)

	StartShift(ctx context.Context, userID string) error
	EndShift(ctx context.Context, userID string) error
	StartBreak(ctx context.Context, userID string, breakType domain.BreakType) error
	EndBreak(ctx context.Context, userID string) error

	// UserActivity resolves adminUserID, requires the administrator role,
	// and returns the filtered user collection keyed by id with history
	// lists pruned to the requested time bounds.
	UserActivity(ctx context.Context, adminUserID string, filters ReportFilters) (map[string]*domain.User, error)
}

// UserLocker serializes mutations to a single user across API replicas.
// Acquire blocks until the lock for userID is held or ctx is done; the
// returned release function must be called exactly once.
type UserLocker interface {
	Acquire(ctx context.Context, userID string) (release func(), err error)
}
