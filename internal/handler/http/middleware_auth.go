package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// auth gates a route behind bearer-token authentication. The token from the
// Authorization header is validated via ParseToken, the subject resolved to
// a full account row, and both the username ([utils.UsernameCtxKey]) and the
// resolved [models.User] ([utils.UserCtxKey]) stored in the context for the
// handlers downstream.
//
// A missing or malformed header, an invalid or expired token, and a subject
// without an account all answer 401; only an unexpected lookup failure is a
// 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.GetUserByUsername(ctx, token.Username)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Str("username", token.Username).Msg("token subject has no account")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during resolving token subject")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the resolved account in the context so that downstream
		// handlers can act on it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, user.Username)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader pulls the token out of an "Authorization:
// <scheme> <token>" header value. A header with fewer than two parts yields
// [ErrInvalidAuthorizationHeader]; a blank token yields [ErrEmptyToken].
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
