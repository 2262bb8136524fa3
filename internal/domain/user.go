package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole controls access to admin surfaces such as the analytics dashboard.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

// User represents an authenticated application user.
// Deleted accounts are anonymized in place (email and name scrubbed,
// Anonymized set) so that aggregate chat statistics survive.
type User struct {
	ID            uuid.UUID
	Email         string
	DisplayName   string
	PasswordHash  string
	EmailVerified bool
	Anonymized    bool
	Role          UserRole
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// EmailTokenPurpose distinguishes verification tokens from future token kinds.
type EmailTokenPurpose string

const (
	EmailTokenVerify EmailTokenPurpose = "verify"
)

// EmailToken is a single-use token mailed to the user, stored hashed.
type EmailToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string
	Purpose    EmailTokenPurpose
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// IsUsable reports whether the token can still be consumed at now.
func (t *EmailToken) IsUsable(now time.Time) bool {
	return t.ConsumedAt == nil && t.ExpiresAt.After(now)
}
