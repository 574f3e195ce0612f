package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "admin123",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password at bcrypt limit",
			password: strings.Repeat("a", 72),
		},
		{
			name:     "password over bcrypt limit",
			password: strings.Repeat("a", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HashPassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, tt.password, got)
		})
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("secret-password")
	require.NoError(t, err)
	second, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret-password", first))
	assert.True(t, VerifyPassword("secret-password", second))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "matching password",
			password: "correct horse battery staple",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "incorrect horse",
			hash:     hash,
			want:     false,
		},
		{
			name:     "malformed hash",
			password: "correct horse battery staple",
			hash:     "not-a-bcrypt-hash",
			want:     false,
		},
		{
			name:     "empty hash",
			password: "correct horse battery staple",
			hash:     "",
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.hash))
		})
	}
}
