// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence. Absence, expiry, and
// revocation are indistinguishable to callers: the find operations return the
// same sentinel for all three so nothing about a token's lifecycle leaks.
var (
	// ErrRefreshTokenNotFound is returned when no usable refresh token matches.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrResetTokenNotFound is returned when no usable password reset token matches.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// TokenRepository defines persistence for refresh-token sessions and
// password-reset tokens. Both are stored by SHA-256 hash; raw tokens never
// reach this layer.
type TokenRepository interface {
	// StoreRefreshToken persists a new refresh token, representing a user session.
	StoreRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindValidRefreshToken retrieves the record for a token hash only if it
	// is unexpired and unrevoked; otherwise ErrRefreshTokenNotFound.
	FindValidRefreshToken(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// ConsumeRefreshToken revokes the token only if it is still unrevoked,
	// in a single conditional statement. When another request already
	// consumed it, ErrRefreshTokenNotFound is returned: of two concurrent
	// redeems of one token, exactly one wins.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) error

	// RevokeRefreshToken marks the token revoked. Idempotent: revoking an
	// already-revoked or absent token is a no-op, not an error.
	RevokeRefreshToken(ctx context.Context, tokenHash string) error

	// RevokeAllForUser marks every outstanding token for the user revoked in
	// a single statement, so concurrent readers see either all or none.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	// CleanupExpired deletes refresh tokens that are expired, or revoked and
	// older than the retention window. Returns the number of rows removed.
	// Meant for an external scheduler, never the request path.
	CleanupExpired(ctx context.Context) (int64, error)

	// UpsertPasswordResetToken replaces the user's reset token if one exists,
	// otherwise inserts it. Guarantees at most one active token per user.
	UpsertPasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// FindValidPasswordResetToken retrieves the record for a token hash only
	// if it is unexpired and unused; otherwise ErrResetTokenNotFound.
	FindValidPasswordResetToken(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkPasswordResetTokenUsed is an idempotent one-way transition.
	MarkPasswordResetTokenUsed(ctx context.Context, tokenHash string) error
}
