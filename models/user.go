package models

import "time"

// Roles assignable to an account. RoleAdmin unlocks the aggregate
// summary endpoint; everything else is available to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account used for authentication and
// record ownership. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique account identifier used during authentication.
	// Uniqueness is enforced by the store constraint, not by the application.
	Email string `json:"email"`

	// Password carries the plaintext password only on inbound
	// registration and login requests. It is never persisted and never
	// serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is the only credential form that reaches the store.
	PasswordHash string `json:"-"`

	// Role controls access to administrative endpoints.
	// One of RoleUser or RoleAdmin.
	Role string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
