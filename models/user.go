package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	HashedPassword string `json:"-"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// IsActive gates every authenticated operation: inactive accounts can
	// neither log in nor use previously issued tokens.
	IsActive bool `json:"is_active"`

	// IsSuperuser grants administrative access: listing all users and
	// mutating resources owned by other accounts.
	IsSuperuser bool `json:"is_superuser"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate carries the fields accepted at registration time.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
// Password, when present, is plaintext and must be hashed by the service
// layer before it reaches storage.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserPatch is the storage-level projection of a UserUpdate: the plaintext
// password has been replaced by its hash. Nil fields are not written.
type UserPatch struct {
	Email          *string
	FullName       *string
	HashedPassword *string
	IsActive       *bool
}
