package domain

import (
	"fmt"
	"time"
)

// Role classifies a user for access-control purposes.
type Role string

const (
	RoleAdministrator    Role = "Administrator"
	RoleNonAdministrator Role = "NonAdministrator"
)

// ParseRole converts the wire representation of a role. The empty string is
// not a valid role; absence is expressed by omitting the parameter.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleNonAdministrator:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// BreakType tags a break as a short break or a lunch break.
type BreakType string

const (
	BreakTypeShort BreakType = "Break"
	BreakTypeLunch BreakType = "Lunch"
)

// ParseBreakType converts the wire representation of a break type.
func ParseBreakType(s string) (BreakType, error) {
	switch BreakType(s) {
	case BreakTypeShort, BreakTypeLunch:
		return BreakType(s), nil
	}
	return "", fmt.Errorf("unknown break type %q", s)
}

// WorkShift is a single continuous on-duty interval. EndTime is nil while
// the shift is in progress and set exactly once when it ends.
type WorkShift struct {
	StartTime time.Time  `json:"startTime" bson:"startTime"`
	EndTime   *time.Time `json:"endTime" bson:"endTime"`
}

// Break is a single continuous off-duty interval nested inside a shift,
// tagged by type. Same open/closed lifecycle as WorkShift.
type Break struct {
	StartTime time.Time  `json:"startTime" bson:"startTime"`
	BreakType BreakType  `json:"breakType" bson:"breakType"`
	EndTime   *time.Time `json:"endTime" bson:"endTime"`
}

// User is the aggregate root. Each of the three current-* fields is an
// active slot: nil means empty, non-nil means one in-progress interval.
// The short-break and lunch slots are independent of each other; a user can
// occupy both at once but never two of the same type.
//
// All state transitions go through the methods below so the slot invariants
// cannot be violated from outside the package's vocabulary.
type User struct {
	ID                string      `json:"userId" bson:"userId"`
	Name              string      `json:"name,omitempty" bson:"name,omitempty"`
	Role              Role        `json:"role,omitempty" bson:"role,omitempty"`
	CurrentWorkShift  *WorkShift  `json:"currentWorkShift" bson:"currentWorkShift"`
	CurrentBreak      *Break      `json:"currentBreak" bson:"currentBreak"`
	CurrentLunchBreak *Break      `json:"currentLunchBreak" bson:"currentLunchBreak"`
	PriorWorkShifts   []WorkShift `json:"priorWorkShifts" bson:"priorWorkShifts"`
	PriorBreaks       []Break     `json:"priorBreaks" bson:"priorBreaks"`
}

// NewUser returns a user with empty slots and empty history.
func NewUser(id string) *User {
	return &User{
		ID:              id,
		PriorWorkShifts: []WorkShift{},
		PriorBreaks:     []Break{},
	}
}

// OnShift reports whether the shift slot is occupied.
func (u *User) OnShift() bool { return u.CurrentWorkShift != nil }

// OnBreak reports whether the slot for the given break type is occupied.
func (u *User) OnBreak(t BreakType) bool {
	if t == BreakTypeLunch {
		return u.CurrentLunchBreak != nil
	}
	return u.CurrentBreak != nil
}

// BeginShift opens the shift slot. Fails with ErrShiftInProgress when a
// shift is already active.
func (u *User) BeginShift(at time.Time) error {
	if u.OnShift() {
		return ErrShiftInProgress
	}
	u.CurrentWorkShift = &WorkShift{StartTime: at}
	return nil
}

// CloseShift ends the active shift, appends it to the prior-shift history
// and clears the slot. A shift cannot end while any break is still open.
func (u *User) CloseShift(at time.Time) error {
	if !u.OnShift() {
		return ErrShiftNotStarted
	}
	if u.CurrentBreak != nil || u.CurrentLunchBreak != nil {
		return ErrBreakInProgress
	}
	shift := *u.CurrentWorkShift
	shift.EndTime = &at
	u.PriorWorkShifts = append(u.PriorWorkShifts, shift)
	u.CurrentWorkShift = nil
	return nil
}

// BeginBreak opens the break slot for the given type. Breaks only exist
// inside a shift, and each type's slot holds at most one break.
func (u *User) BeginBreak(t BreakType, at time.Time) error {
	if !u.OnShift() {
		return ErrShiftNotStarted
	}
	switch t {
	case BreakTypeShort:
		if u.CurrentBreak != nil {
			return ErrBreakInProgress
		}
		u.CurrentBreak = &Break{StartTime: at, BreakType: t}
	case BreakTypeLunch:
		if u.CurrentLunchBreak != nil {
			return ErrBreakInProgress
		}
		u.CurrentLunchBreak = &Break{StartTime: at, BreakType: t}
	default:
		return fmt.Errorf("unknown break type %q", t)
	}
	return nil
}

// CloseBreak ends whichever break slot is occupied and moves it to the
// prior-break history. When both slots are occupied the short break is
// closed and the lunch break left untouched; the caller cannot choose which
// one ends. That preference is deliberate and pinned by tests.
func (u *User) CloseBreak(at time.Time) error {
	switch {
	case u.CurrentBreak != nil:
		b := *u.CurrentBreak
		b.EndTime = &at
		u.PriorBreaks = append(u.PriorBreaks, b)
		u.CurrentBreak = nil
	case u.CurrentLunchBreak != nil:
		b := *u.CurrentLunchBreak
		b.EndTime = &at
		u.PriorBreaks = append(u.PriorBreaks, b)
		u.CurrentLunchBreak = nil
	default:
		return ErrBreakNotStarted
	}
	return nil
}

// Clone returns a deep copy so callers can trim history lists without
// touching the stored record.
func (u *User) Clone() *User {
	clone := *u
	if u.CurrentWorkShift != nil {
		shift := *u.CurrentWorkShift
		clone.CurrentWorkShift = &shift
	}
	if u.CurrentBreak != nil {
		b := *u.CurrentBreak
		clone.CurrentBreak = &b
	}
	if u.CurrentLunchBreak != nil {
		b := *u.CurrentLunchBreak
		clone.CurrentLunchBreak = &b
	}
	clone.PriorWorkShifts = append([]WorkShift{}, u.PriorWorkShifts...)
	clone.PriorBreaks = append([]Break{}, u.PriorBreaks...)
	return &clone
}
