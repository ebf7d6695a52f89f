package service

import (
	"context"
	"errors"
	"time"

	"github.com/hawkins/simpletimeclock/internal/api/metrics"
	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// UserActivity builds the administrator activity report.
//
// The pipeline runs in two distinct passes and their order matters:
//  1. filter — drop users that miss any of the conjunctive predicates,
//     with count thresholds checked against the full, untrimmed lists;
//  2. prune — for each surviving user, trim the history lists to the
//     requested start-time bounds (strict comparisons).
//
// A user whose history is pruned to nothing still appears in the report.
func (s *TimeclockService) UserActivity(ctx context.Context, adminUserID string, filters ports.ReportFilters) (map[string]*domain.User, error) {
	admin, err := s.repo.Find(ctx, adminUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.ReportQueriesTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	// A missing role counts as non-administrator.
	if admin.Role != domain.RoleAdministrator {
		metrics.ReportQueriesTotal.WithLabelValues("denied").Inc()
		s.logger.Warn().Str("user_id", adminUserID).Msg("activity report denied")
		return nil, domain.ErrAccessDenied
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	report := make(map[string]*domain.User)
	for id, user := range users {
		if !passesFilters(user, filters) {
			continue
		}
		report[id] = pruneHistory(user.Clone(), filters)
	}

	metrics.ReportQueriesTotal.WithLabelValues("ok").Inc()
	metrics.ReportUsersReturned.Observe(float64(len(report)))
	s.logger.Info().Str("user_id", adminUserID).Int("users", len(report)).Msg("activity report built")

	return report, nil
}

// passesFilters applies the conjunctive whole-user predicates. Zero-valued
// filter fields never exclude anyone.
func passesFilters(u *domain.User, f ports.ReportFilters) bool {
	if f.UserID != "" && f.UserID != u.ID {
		return false
	}
	if f.Role != "" && f.Role != u.Role {
		return false
	}
	if len(u.PriorWorkShifts) < f.PriorWorkShiftsThreshold {
		return false
	}
	if len(u.PriorBreaks) < f.PriorBreaksThreshold {
		return false
	}
	if f.CurrentlyOnBreak && u.CurrentBreak == nil {
		return false
	}
	if f.CurrentlyOnLunch && u.CurrentLunchBreak == nil {
		return false
	}
	return true
}

// pruneHistory trims the clone's history lists in place and returns it.
func pruneHistory(u *domain.User, f ports.ReportFilters) *domain.User {
	shifts := u.PriorWorkShifts[:0:0]
	for _, shift := range u.PriorWorkShifts {
		if startWithin(shift.StartTime, f.ShiftBeginsBefore, f.ShiftBeginsAfter) {
			shifts = append(shifts, shift)
		}
	}
	u.PriorWorkShifts = shifts
	if u.PriorWorkShifts == nil {
		u.PriorWorkShifts = []domain.WorkShift{}
	}

	breaks := u.PriorBreaks[:0:0]
	for _, b := range u.PriorBreaks {
		if startWithin(b.StartTime, f.BreakBeginsBefore, f.BreakBeginsAfter) {
			breaks = append(breaks, b)
		}
	}
	u.PriorBreaks = breaks
	if u.PriorBreaks == nil {
		u.PriorBreaks = []domain.Break{}
	}

	return u
}

// startWithin reports whether start falls strictly inside the optional
// (after, before) bounds.
func startWithin(start time.Time, before, after *time.Time) bool {
	if before != nil && !start.Before(*before) {
		return false
	}
	if after != nil && !start.After(*after) {
		return false
	}
	return true
}
