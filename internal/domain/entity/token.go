// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without
// requiring credentials. A token is usable only while unexpired and unrevoked.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw token never touches storage.
	ExpiresAt time.Time
	Revoked   bool // Set on logout, rotation, password change, and password reset. One-way.
	CreatedAt time.Time
}

// Usable reports whether the token can still redeem a new token pair.
func (t *RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && t.ExpiresAt.After(now)
}

// PasswordResetToken represents a single-use password recovery credential.
// At most one row exists per user: requesting a new reset replaces the
// previous token, so only the most recently issued link is ever valid.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Unique. The upsert key.
	TokenHash string    // SHA-256 hash of the raw reset token mailed to the user.
	ExpiresAt time.Time
	Used      bool // One-way; a consumed token never grants another reset.
	CreatedAt time.Time
}

// Usable reports whether the token can still authorize a password reset.
func (t *PasswordResetToken) Usable(now time.Time) bool {
	return !t.Used && t.ExpiresAt.After(now)
}
