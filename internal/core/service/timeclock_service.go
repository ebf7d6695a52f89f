package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hawkins/simpletimeclock/internal/api/metrics"
	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
	"github.com/hawkins/simpletimeclock/internal/pkg/keymutex"
)

// TimeclockService owns the per-user shift/break state machine and the
// activity-report filter pipeline.
//
// Every mutation is read → validate → mutate in memory → stamp with the
// clock → persist, and the whole sequence holds a per-user lock so two
// concurrent requests for the same user cannot lose each other's write.
// The lock is an in-process key mutex; an optional ports.UserLocker extends
// the same guarantee across replicas sharing one database.
type TimeclockService struct {
	repo   ports.UserRepository
	clock  Clock
	locker ports.UserLocker
	locks  *keymutex.KeyMutex
	logger zerolog.Logger
}

// NewTimeclockService wires the service. locker may be nil for
// single-replica deployments.
func NewTimeclockService(repo ports.UserRepository, clock Clock, locker ports.UserLocker, logger zerolog.Logger) *TimeclockService {
	if clock == nil {
		clock = SystemClock()
	}
	return &TimeclockService{
		repo:   repo,
		clock:  clock,
		locker: locker,
		locks:  keymutex.New(0),
		logger: logger,
	}
}

// CreateUser inserts a new user with empty slots and the non-administrator
// role. Administrators are promoted afterwards via UpdateUser.
func (s *TimeclockService) CreateUser(ctx context.Context, userID string) (*domain.User, error) {
	user := domain.NewUser(userID)
	user.Role = domain.RoleNonAdministrator

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("user created")
	return created, nil
}

// FindUser returns the user record for userID.
func (s *TimeclockService) FindUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Find(ctx, userID)
}

// UpdateUser applies a partial update. Nil input fields leave the stored
// value unchanged.
func (s *TimeclockService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	unlock, err := s.lockUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	user, err := s.repo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.UserID).Msg("user updated")
	return updated, nil
}

// StartShift opens the user's shift slot at the current clock time.
func (s *TimeclockService) StartShift(ctx context.Context, userID string) error {
	err := s.transition(ctx, userID, func(u *domain.User) error {
		return u.BeginShift(s.clock.Now())
	})
	if err != nil {
		return err
	}
	metrics.ShiftsStartedTotal.Inc()
	s.logger.Info().Str("user_id", userID).Msg("shift started")
	return nil
}

// EndShift closes the active shift and moves it to the prior-shift list.
// Refused while any break is still open.
func (s *TimeclockService) EndShift(ctx context.Context, userID string) error {
	err := s.transition(ctx, userID, func(u *domain.User) error {
		return u.CloseShift(s.clock.Now())
	})
	if err != nil {
		return err
	}
	metrics.ShiftsEndedTotal.Inc()
	s.logger.Info().Str("user_id", userID).Msg("shift ended")
	return nil
}

// StartBreak opens the break slot for breakType. Requires an active shift.
func (s *TimeclockService) StartBreak(ctx context.Context, userID string, breakType domain.BreakType) error {
	err := s.transition(ctx, userID, func(u *domain.User) error {
		return u.BeginBreak(breakType, s.clock.Now())
	})
	if err != nil {
		return err
	}
	metrics.BreaksStartedTotal.WithLabelValues(string(breakType)).Inc()
	s.logger.Info().Str("user_id", userID).Str("break_type", string(breakType)).Msg("break started")
	return nil
}

// EndBreak closes whichever break slot is occupied, preferring the short
// break when both are.
func (s *TimeclockService) EndBreak(ctx context.Context, userID string) error {
	var closed domain.BreakType
	err := s.transition(ctx, userID, func(u *domain.User) error {
		if u.CurrentBreak != nil {
			closed = domain.BreakTypeShort
		} else {
			closed = domain.BreakTypeLunch
		}
		return u.CloseBreak(s.clock.Now())
	})
	if err != nil {
		return err
	}
	metrics.BreaksEndedTotal.WithLabelValues(string(closed)).Inc()
	s.logger.Info().Str("user_id", userID).Str("break_type", string(closed)).Msg("break ended")
	return nil
}

// transition runs a single state-machine step under the per-user lock:
// load, apply, persist. The step callback checks exactly the precondition
// relevant to its transition and nothing else.
func (s *TimeclockService) transition(ctx context.Context, userID string, step func(*domain.User) error) error {
	unlock, err := s.lockUser(ctx, userID)
	if err != nil {
		return err
	}
	defer unlock()

	user, err := s.repo.Find(ctx, userID)
	if err != nil {
		return err
	}

	if err := step(user); err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.TransitionsRejectedTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	_, err = s.repo.Update(ctx, user)
	return err
}

// lockUser takes the in-process lock for userID and, when a distributed
// locker is configured, the cross-replica lease as well.
func (s *TimeclockService) lockUser(ctx context.Context, userID string) (func(), error) {
	s.locks.Lock(userID)
	if s.locker == nil {
		return func() { s.locks.Unlock(userID) }, nil
	}

	release, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		s.locks.Unlock(userID)
		return nil, err
	}
	return func() {
		release()
		s.locks.Unlock(userID)
	}, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrShiftInProgress):
		return "shift_in_progress"
	case errors.Is(err, domain.ErrShiftNotStarted):
		return "shift_not_started"
	case errors.Is(err, domain.ErrBreakInProgress):
		return "break_in_progress"
	case errors.Is(err, domain.ErrBreakNotStarted):
		return "break_not_started"
	}
	return ""
}
