package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
)

type userKey struct{}

// authMiddleware resolves the bearer token to a user and stores it in the
// request context. Every protected route goes through this single gate.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing_token", "authorization header required")
			return
		}

		user, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			s.serviceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route on a minimum role in the fixed hierarchy
// STUDENT < TEACHER < DIRECTOR < ADMIN < SUPER_ADMIN.
func (s *Server) requireRole(min models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromContext(r.Context())
			if user == nil {
				writeError(w, http.StatusUnauthorized, "missing_token", "authorization header required")
				return
			}
			if !user.Role.AtLeast(min) {
				writeError(w, http.StatusForbidden, "insufficient_role", "role does not permit this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
