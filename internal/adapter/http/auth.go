package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
)

type tokenKey struct{}

// requireSession resolves the bearer token and puts the user on the request context
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		user, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}

		ctx := auth.WithUser(r.Context(), user)
		ctx = context.WithValue(ctx, tokenKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func sessionToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
