package service

import (
	"errors"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed input, wrong token type, or expiry. Callers must not learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims is the identity snapshot embedded in an access token at
// issuance time. Later profile edits do not retroactively update tokens
// already in flight; the staleness window is bounded by the access TTL.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	FirstName string
	LastName  string
}

// TokenPair bundles the two tokens handed to a client on login,
// registration, and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenCodec defines the interface for issuing and verifying JWTs.
// Access and refresh tokens are signed with independent secrets so a
// compromise of one cannot forge the other.
type TokenCodec interface {
	// IssueTokenPair creates a new access and refresh token for a given user.
	IssueTokenPair(user *entity.User) (*TokenPair, error)

	// VerifyAccessToken checks an access token and returns its claims.
	// Any failure yields ErrInvalidToken.
	VerifyAccessToken(tokenString string) (*AccessClaims, error)

	// VerifyRefreshToken checks a refresh token and returns the user ID it
	// was issued to. Any failure yields ErrInvalidToken.
	VerifyRefreshToken(tokenString string) (uuid.UUID, error)

	// HashToken returns the hex SHA-256 digest used to store and look up
	// tokens at rest.
	HashToken(tokenString string) string

	// RefreshTokenDuration returns the configured lifetime for refresh tokens.
	RefreshTokenDuration() time.Duration
}
