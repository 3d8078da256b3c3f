package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hagwonlab/academy-api/internal/models"
)

func submitAs(s *Server, user *models.User, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", "/api/homework", strings.NewReader(body))
	ctx := context.WithValue(r.Context(), userKey{}, user)
	w := httptest.NewRecorder()
	s.handleSubmitHomework(w, r.WithContext(ctx))
	return w
}

func TestSubmitHomeworkStudentsOnly(t *testing.T) {
	s := &Server{}

	for _, role := range []models.Role{
		models.RoleTeacher,
		models.RoleDirector,
		models.RoleAdmin,
		models.RoleSuperAdmin,
	} {
		w := submitAs(s, &models.User{Role: role, HomeworkEnabled: true}, `{"title":"t","content":"c"}`)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s submit: status %d, want 403", role, w.Code)
		}
		envelope := decodeError(t, w.Result())
		if envelope.Code != "insufficient_role" {
			t.Errorf("%s submit: code %q, want insufficient_role", role, envelope.Code)
		}
	}
}

func TestSubmitHomeworkFeatureFlag(t *testing.T) {
	s := &Server{}

	w := submitAs(s, &models.User{Role: models.RoleStudent, HomeworkEnabled: false}, `{"title":"t","content":"c"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("disabled student submit: status %d, want 403", w.Code)
	}
	envelope := decodeError(t, w.Result())
	if envelope.Code != "feature_disabled" {
		t.Fatalf("disabled student submit: code %q, want feature_disabled", envelope.Code)
	}

	// An enabled student passes both gates and fails on the body instead.
	w = submitAs(s, &models.User{Role: models.RoleStudent, HomeworkEnabled: true}, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("enabled student with bad body: status %d, want 400", w.Code)
	}
}
