package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "jane@example.com"}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return token
}

func TestClaimedRole(t *testing.T) {
	t.Run("Admin claim is read without verification", func(t *testing.T) {
		role, ok := ClaimedRole(signedToken(t, "admin"))
		assert.True(t, ok)
		assert.Equal(t, RoleAdmin, role)
	})

	t.Run("User claim is read", func(t *testing.T) {
		role, ok := ClaimedRole(signedToken(t, "user"))
		assert.True(t, ok)
		assert.Equal(t, RoleUser, role)
	})

	t.Run("Unknown role values are ignored", func(t *testing.T) {
		_, ok := ClaimedRole(signedToken(t, "superuser"))
		assert.False(t, ok)
	})

	t.Run("Token without a role claim reports none", func(t *testing.T) {
		_, ok := ClaimedRole(signedToken(t, ""))
		assert.False(t, ok)
	})

	t.Run("Opaque tokens report none", func(t *testing.T) {
		_, ok := ClaimedRole("not-a-jwt")
		assert.False(t, ok)

		_, ok = ClaimedRole("")
		assert.False(t, ok)
	})
}

func TestFallbackRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, FallbackRole("Admin@Example.com", "admin@example.com"))
	assert.Equal(t, RoleUser, FallbackRole("jane@example.com", "admin@example.com"))
	assert.Equal(t, RoleUser, FallbackRole("jane@example.com", ""))
}
