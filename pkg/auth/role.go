package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ClaimedRole decodes the "role" claim from a backend-issued JWT. The
// claim is authoritative when present; signature verification happens
// server-side on every request, so the client only decodes. Opaque
// (non-JWT) tokens report ok=false.
func ClaimedRole(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims := &roleClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", false
	}
	switch claims.Role {
	case RoleAdmin, RoleUser:
		return claims.Role, true
	}
	return "", false
}

// FallbackRole is the legacy role derivation for opaque tokens: the
// signed-in email is compared against the configured admin address.
func FallbackRole(email, adminEmail string) string {
	if adminEmail != "" && strings.EqualFold(email, adminEmail) {
		return RoleAdmin
	}
	return RoleUser
}
