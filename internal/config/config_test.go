package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/academy?parseTime=true")
	t.Setenv("AIGEN_API_KEY", "aigen-key")
	t.Setenv("KAKAO_API_KEY", "kakao-key")
	t.Setenv("KAKAO_API_SECRET", "kakao-secret")
	t.Setenv("S3_REGION", "ap-northeast-2")
	t.Setenv("S3_ACCESS_KEY", "access")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_BUCKET", "bucket")
	t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.SessionTTL != 72*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.IsDevelopment() {
		t.Error("production reported as development")
	}
	if cfg.AIGenModel == "" {
		t.Error("AIGenModel default missing")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("KAKAO_API_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load succeeded without required variables")
	}
	if !strings.Contains(err.Error(), "MYSQL_DSN") || !strings.Contains(err.Error(), "KAKAO_API_SECRET") {
		t.Fatalf("error does not name the missing variables: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_LISTEN_ADDR", ":9090")
	t.Setenv("ENVIRONMENT", "Development")
	t.Setenv("SESSION_TTL_HOURS", "24")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if !cfg.IsDevelopment() {
		t.Error("development environment not detected")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "https://fallback.example.com"},
		{"https://api.example.com", "https://api.example.com"},
		{"https://api.example.com/", "https://api.example.com"},
		{"api.example.com", "https://api.example.com"},
	}
	for _, tc := range cases {
		if got := normalizeBaseURL(tc.in, "https://fallback.example.com"); got != tc.want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
