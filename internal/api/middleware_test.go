package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hagwonlab/academy-api/internal/models"
)

func TestRequireRole(t *testing.T) {
	s := &Server{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		role models.Role
		min  models.Role
		want int
	}{
		{models.RoleStudent, models.RoleTeacher, http.StatusForbidden},
		{models.RoleTeacher, models.RoleTeacher, http.StatusNoContent},
		{models.RoleDirector, models.RoleTeacher, http.StatusNoContent},
		{models.RoleDirector, models.RoleAdmin, http.StatusForbidden},
		{models.RoleSuperAdmin, models.RoleAdmin, http.StatusNoContent},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		ctx := context.WithValue(r.Context(), userKey{}, &models.User{Role: tc.role})
		w := httptest.NewRecorder()
		s.requireRole(tc.min)(next).ServeHTTP(w, r.WithContext(ctx))
		if w.Code != tc.want {
			t.Errorf("role %s against minimum %s: status %d, want %d", tc.role, tc.min, w.Code, tc.want)
		}
	}

	// No user in context at all.
	w := httptest.NewRecorder()
	s.requireRole(models.RoleTeacher)(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing user: status %d, want 401", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Bearer  abc123 ", "abc123"},
		{"", ""},
		{"abc123", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		if got := bearerToken(tc.header); got != tc.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5000"
	if got := clientIP(r); got != "10.0.0.1:5000" {
		t.Errorf("clientIP from RemoteAddr = %q", got)
	}

	r.Header.Set("X-Real-IP", "203.0.113.9")
	if got := clientIP(r); got != "203.0.113.9" {
		t.Errorf("clientIP from X-Real-IP = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := clientIP(r); got != "198.51.100.7" {
		t.Errorf("clientIP from X-Forwarded-For = %q", got)
	}
}
