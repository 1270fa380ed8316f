package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Usable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{
			name:  "unrevoked and unexpired",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "revoked",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour), Revoked: true},
			want:  false,
		},
		{
			name:  "expired",
			token: RefreshToken{ExpiresAt: now.Add(-time.Second)},
			want:  false,
		},
		{
			name:  "expiring exactly now",
			token: RefreshToken{ExpiresAt: now},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Usable(now))
		})
	}
}

func TestPasswordResetToken_Usable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token PasswordResetToken
		want  bool
	}{
		{
			name:  "unused and unexpired",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "used",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour), Used: true},
			want:  false,
		},
		{
			name:  "expired",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Second)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Usable(now))
		})
	}
}
