package domain

import "time"

// Credentials binds a password hash to an existing user. Stored apart from
// the user record so the users collection keeps its flat layout.
type Credentials struct {
	UserID       string    `json:"userId" bson:"userId"`
	PasswordHash string    `json:"passwordHash" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
