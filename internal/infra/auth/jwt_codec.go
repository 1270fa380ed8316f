package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Access and refresh tokens are signed with separate HS256 secrets.
type jwtCodec struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtCodec{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssueTokenPair creates a new access and refresh token for a given user.
// The access token carries an identity snapshot; the refresh token carries
// only the user ID.
func (s *jwtCodec) IssueTokenPair(user *entity.User) (*service.TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"userId":    user.ID.String(),
		"email":     user.Email,
		"role":      user.Role.String(),
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"typ":       tokenTypeAccess,
		"iat":       now.Unix(),
		"exp":       now.Add(s.accessTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshClaims := jwt.MapClaims{
		"userId": user.ID.String(),
		"typ":    tokenTypeRefresh,
		"iat":    now.Unix(),
		"exp":    now.Add(s.refreshTTL).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.refreshSecret))
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken checks an access token and returns the identity claims it carries.
// Every failure mode collapses to ErrInvalidToken.
func (s *jwtCodec) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims, err := s.verify(tokenString, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := claimUUID(claims, "userId")
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	role := entity.Role(claimString(claims, "role"))
	if !role.IsValid() {
		return nil, service.ErrInvalidToken
	}

	return &service.AccessClaims{
		UserID:    userID,
		Email:     claimString(claims, "email"),
		Role:      role,
		FirstName: claimString(claims, "firstName"),
		LastName:  claimString(claims, "lastName"),
	}, nil
}

// VerifyRefreshToken checks a refresh token and returns the user ID it was issued to.
func (s *jwtCodec) VerifyRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.verify(tokenString, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := claimUUID(claims, "userId")
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}

// HashToken returns the hex SHA-256 digest of a token string.
// Tokens are stored and looked up by this digest, never in plaintext.
func (s *jwtCodec) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtCodec) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// verify parses and validates a token against a secret and expected type claim.
func (s *jwtCodec) verify(tokenString, secret, expectedType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	// Reject tokens of the wrong kind, e.g. a refresh token presented as an
	// access token.
	if claimString(claims, "typ") != expectedType {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)

	return value
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	return uuid.Parse(claimString(claims, key))
}
