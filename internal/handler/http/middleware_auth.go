package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a full user record via [service.AuthService.CurrentUser],
// and on success stores that record in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Rejections:
//   - Missing or malformed header → 401 with the header sentinel message.
//   - Expired, invalid, or wrong-type token → 401.
//   - Subject account gone → 404.
//   - Subject account deactivated → 400.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		caller, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers never re-parse the token or re-query storage.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, caller)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
