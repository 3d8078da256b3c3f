package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hagwonlab/academy-api/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewServer(config.Config{}, log, Services{}).Router())
	t.Cleanup(srv.Close)
	return srv
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

func decodeError(t *testing.T, resp *http.Response) errorEnvelope {
	t.Helper()
	defer resp.Body.Close()
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope
}

func TestSignupAlwaysForbidden(t *testing.T) {
	srv := newTestServer(t)

	payloads := []string{
		`{"email":"new@example.com","password":"longenough","name":"New User"}`,
		`{}`,
		`not even json`,
		``,
	}
	for _, payload := range payloads {
		resp, err := http.Post(srv.URL+"/api/auth/signup", "application/json", strings.NewReader(payload))
		if err != nil {
			t.Fatalf("post signup: %v", err)
		}
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("signup with payload %q returned %d, want 403", payload, resp.StatusCode)
		}
		envelope := decodeError(t, resp)
		if envelope.Success {
			t.Fatal("signup envelope reports success")
		}
		if envelope.Code != "signup_disabled" {
			t.Fatalf("signup code = %q", envelope.Code)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/auth/me", "/api/homework", "/api/admin/users/"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s without token returned %d, want 401", path, resp.StatusCode)
		}
		envelope := decodeError(t, resp)
		if envelope.Code != "missing_token" {
			t.Fatalf("%s code = %q", path, envelope.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health returned %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("status = %q", body.Status)
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("parseID(\" 42 \") = %d, %v", id, err)
	}
	if _, err := parseID("abc"); err == nil {
		t.Fatal("parseID accepted non-numeric input")
	}
	if _, err := parseID(""); err == nil {
		t.Fatal("parseID accepted empty input")
	}
}
