package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sunday-school-service/internal/auth"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple", 4)
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.NoError(t, auth.ComparePassword(hash, "correct horse battery staple"))
	require.Error(t, auth.ComparePassword(hash, "correct horse battery stapl"))
	require.Error(t, auth.ComparePassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := auth.HashPassword("secret123", 4)
	require.NoError(t, err)
	second, err := auth.HashPassword("secret123", 4)
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal inputs hash differently
	require.NotEqual(t, first, second)
	require.NoError(t, auth.ComparePassword(first, "secret123"))
	require.NoError(t, auth.ComparePassword(second, "secret123"))
}

func TestHashPasswordDefaultsCost(t *testing.T) {
	hash, err := auth.HashPassword("secret123", 0)
	require.NoError(t, err)
	require.NoError(t, auth.ComparePassword(hash, "secret123"))
}
