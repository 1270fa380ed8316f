package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	hash, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, hasher.Check("Sup3r$ecret", hash))
	assert.False(t, hasher.Check("Sup3r$ecreT", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_Check_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_Hash_ProducesUniqueSalts(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	first, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	hash, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	hasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher(t)

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{
			name:     "valid password",
			password: "Abcdef1!",
		},
		{
			name:     "valid password with unicode letters",
			password: "Pässphräse123!",
		},
		{
			name:     "too short",
			password: "Ab1!",
			wantMsg:  "Password must be at least 8 characters long",
		},
		{
			name:     "empty",
			password: "",
			wantMsg:  "Password must be at least 8 characters long",
		},
		{
			name:     "missing uppercase",
			password: "abcdefg1!",
			wantMsg:  "Password must contain at least one uppercase letter",
		},
		{
			name:     "missing lowercase",
			password: "ABCDEFG1!",
			wantMsg:  "Password must contain at least one lowercase letter",
		},
		{
			name:     "missing number",
			password: "Abcdefgh!",
			wantMsg:  "Password must contain at least one number",
		},
		{
			name:     "missing special character",
			password: "Abcdefg1",
			wantMsg:  "Password must contain at least one special character",
		},
		{
			// Missing both uppercase and special, uppercase is the earlier rule.
			name:     "uppercase reported before special character",
			password: "alllowercase1",
			wantMsg:  "Password must contain at least one uppercase letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidateStrength(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
