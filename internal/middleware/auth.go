package middleware

import (
	"errors"
	"net/http"

	"pcstore-be/internal/auth"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/transport"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errForbidden       = errors.New("forbidden: admin only")
)

// AuthMiddleware attaches the caller identity when a valid token is present.
// Missing, bad or expired tokens pass through anonymously and RequireAuth
// rejects them on protected routes. A bad cookie is cleared on the way.
func AuthMiddleware(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Debug("ignoring invalid access token", zap.Error(err))
				if c, cerr := r.Cookie(auth.CookieName); cerr == nil && c.Value == tokenStr {
					auth.ClearTokenCookie(w)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			transport.WriteError(w, http.StatusUnauthorized, "Authentication required. Please log in again.", errUnauthenticated)
			return
		}
		next(w, r)
	}
}

func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsAdmin(r.Context()) {
			transport.WriteError(w, http.StatusForbidden, "Admin access required", errForbidden)
			return
		}
		next(w, r)
	})
}
