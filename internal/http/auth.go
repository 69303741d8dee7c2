package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const ctxUser contextKey = "user"

// WithAdmin checks the bearer token and the guard session, and records
// activity on the session. Token validity alone is not enough; the session
// registry must also know the user, so a restart logs everyone out.
func (s *Server) WithAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		token, claims, err := s.Tokens.ParseToken(tokenStr)
		if err != nil || !token.Valid || claims["typ"] != "access" {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		user, _ := claims["sub"].(string)
		if user == "" {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if _, err := s.Guard.Touch(r.Context(), user); err != nil {
			if mapServiceError(w, err) {
				return
			}
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CurrentUser(r *http.Request) string {
	if value, ok := r.Context().Value(ctxUser).(string); ok {
		return value
	}
	return ""
}
