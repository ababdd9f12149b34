// Package middleware contains the HTTP middleware used by the API layer.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/service/auth"
	"github.com/floravend/bloom-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
// Beyond signature and expiry checks it resolves the token subject to a stored
// user, so a token whose user no longer exists is rejected with 401 instead of
// flowing into handlers as a dangling reference.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// bearerToken extracts the token from the Authorization header.
// Returns an error wrapping auth.ErrMissingToken when the header is absent or
// is not a Bearer credential.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("%w: no authorization header", auth.ErrMissingToken)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("%w: authorization header is not a bearer token", auth.ErrMissingToken)
	}

	return parts[1], nil
}

// Authenticate validates JWT tokens from the Authorization header, resolves
// the subject username to a user, and adds the user to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)

		var claims *auth.Claims
		if err == nil {
			claims, err = m.jwtService.ValidateToken(r.Context(), token)
		}

		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingSubject):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// Resolve the subject to a stored user
		user, err := m.userStore.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			if store.IsNotFoundError(err) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token subject")
				return
			}
			slog.Error("failed to resolve token subject", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		// Add the user to the context
		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)

		// Continue with the authenticated request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
