package utils

import (
	"context"
	"strings"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Identity is the authenticated caller, as read from the access token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

type identityKey struct{}

// NormalizeRole upper-cases a stored or claimed role. Anything that is not
// an admin is treated as a regular user.
func NormalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// SetUserContext is called by the auth middleware once a token verifies.
func SetUserContext(ctx context.Context, id, email, role string) context.Context {
	return context.WithValue(ctx, identityKey{}, Identity{
		UserID: id,
		Email:  email,
		Role:   NormalizeRole(role),
	})
}

// IdentityFrom returns the caller; ok is false for anonymous requests.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFrom(ctx)
	return id.UserID, ok
}

func GetUserRoleFromContext(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.Role
}

func IsAdmin(ctx context.Context) bool {
	id, ok := IdentityFrom(ctx)
	return ok && id.Role == RoleAdmin
}
