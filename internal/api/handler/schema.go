package handler

// timeLayout is the format of all timestamp query parameters, kept for
// compatibility with existing callers of the report endpoint.
const timeLayout = "2006-01-02 15:04"

// updateUserQuery carries the optional fields of POST /user/:userId/update.
// Absent parameters leave the stored value unchanged.
type updateUserQuery struct {
	Name string `query:"name"`
	Role string `query:"role" validate:"omitempty,oneof=Administrator NonAdministrator"`
}

// startBreakQuery carries the optional break type of
// POST /user/:userId/startBreak. Defaults to a short break.
type startBreakQuery struct {
	BreakType string `query:"breakType" validate:"omitempty,oneof=Break Lunch"`
}

// userActivityQuery carries every filter of GET /admin/:adminUserId/userActivity.
// All parameters are optional; timestamps use timeLayout.
type userActivityQuery struct {
	UserIDToView             string `query:"userIdToView"`
	PriorWorkShiftsThreshold int    `query:"priorWorkShiftsThreshold" validate:"gte=0"`
	PriorBreaksThreshold     int    `query:"priorBreaksThreshold"     validate:"gte=0"`
	IsCurrentlyOnBreak       bool   `query:"isCurrentlyOnBreak"`
	IsCurrentlyOnLunch       bool   `query:"isCurrentlyOnLunch"`
	RoleToView               string `query:"roleToView"        validate:"omitempty,oneof=Administrator NonAdministrator"`
	ShiftBeginsBefore        string `query:"shiftBeginsBefore"`
	ShiftBeginsAfter         string `query:"shiftBeginsAfter"`
	BreakBeginsBefore        string `query:"breakBeginsBefore"`
	BreakBeginsAfter         string `query:"breakBeginsAfter"`
}

// registerRequest binds a password to an existing user id.
type registerRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Password string `json:"password" validate:"required"`
}
