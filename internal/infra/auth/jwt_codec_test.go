package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test-access-secret",
			Refresh: "test-refresh-secret",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour * 24 * 7,
		},
	}

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func testUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "jane@example.com",
		Role:      entity.RoleDistributor,
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestNewJWTCodec_RequiresSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewJWTCodec(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTCodec(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "only-access"},
	})
	assert.Error(t, err)
}

func TestJWTCodec_IssueAndVerify(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	user := testUser()

	pair, err := codec.IssueTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := codec.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleDistributor, claims.Role)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)

	userID, err := codec.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestJWTCodec_RejectsWrongTokenKind(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	pair, err := codec.IssueTokenPair(testUser())
	require.NoError(t, err)

	// A refresh token must not pass access verification and vice versa,
	// even before the signature check gets a say.
	_, err = codec.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = codec.VerifyRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	otherCfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "another-access-secret",
			Refresh: "another-refresh-secret",
		},
	}
	other, err := NewJWTCodec(otherCfg)
	require.NoError(t, err)

	pair, err := other.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = codec.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = codec.VerifyRefreshToken(pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_RejectsGarbage(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	_, err := codec.VerifyAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = codec.VerifyRefreshToken("")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	codec := &jwtCodec{
		accessSecret:  "test-access-secret",
		refreshSecret: "test-refresh-secret",
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	pair, err := codec.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = codec.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = codec.VerifyRefreshToken(pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTCodec_HashToken(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	first := codec.HashToken("some-token")
	second := codec.HashToken("some-token")
	other := codec.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}

func TestJWTCodec_RefreshTokenDuration(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	assert.Equal(t, time.Hour*24*7, codec.RefreshTokenDuration())

	defaulted, err := NewJWTCodec(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "a", Refresh: "r"},
	})
	require.NoError(t, err)
	assert.Equal(t, defaultRefreshTTL, defaulted.RefreshTokenDuration())
}
