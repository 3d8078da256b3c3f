package aigen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hagwonlab/academy-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.Config{
		AIGenAPIKey:       "test-key",
		AIGenBaseURL:      srv.URL,
		AIGenGeneratePath: "/api/v1/generate",
		AIGenModel:        "test-model",
	}, nil)
}

func TestGenerate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["model"] != "test-model" {
			t.Errorf("model = %v", payload["model"])
		}
		if payload["prompt"] != "write something" {
			t.Errorf("prompt = %v", payload["prompt"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]string{"text": "generated text"},
		})
	})

	text, err := client.Generate(context.Background(), GenerateOptions{
		Instruction: "be brief",
		Prompt:      "write something",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "generated text" {
		t.Fatalf("text = %q", text)
	}
}

func TestGenerateAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 429, "msg": "quota exceeded"})
	})

	_, err := client.Generate(context.Background(), GenerateOptions{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error for non-200 code")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error does not carry provider message: %v", err)
	}
}

func TestGenerateHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	if _, err := client.Generate(context.Background(), GenerateOptions{Prompt: "p"}); err == nil {
		t.Fatal("expected error for HTTP 502")
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	if _, err := client.Generate(context.Background(), GenerateOptions{Prompt: "   "}); err == nil {
		t.Fatal("expected error for blank prompt")
	}
}
