package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent,
// cannot be parsed as a bearer token, or carries an expired or otherwise
// invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeJSONUnauthorized(w, r, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeJSONUnauthorized(w, r, err.Error())
			return
		}

		token, err := h.services.AuthService.ParseToken(tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeJSONUnauthorized(w, r, http.StatusText(http.StatusUnauthorized))
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSONUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusUnauthorized); err != nil {
		log.Err(err).Msg("failed to write error response")
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
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
