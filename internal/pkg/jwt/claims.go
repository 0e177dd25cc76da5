package jwt

import (
	"context"

	"github.com/constrack/backoffice-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// UserIDFromContext extracts the authenticated user's ID from the verified
// token claims placed on the context by the jwtauth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	id, ok := claims["user_id"].(string)
	return id, ok && id != ""
}

// RoleFromContext extracts the authenticated user's role claim.
func RoleFromContext(ctx context.Context) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(role), user.Role(role).Valid()
}
