package kakao

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hagwonlab/academy-api/internal/config"
)

func TestSignDeterministic(t *testing.T) {
	body := []byte(`{"to":"01012345678"}`)
	first := Sign("secret", "1700000000", http.MethodPost, "/v2/messages", body)
	second := Sign("secret", "1700000000", http.MethodPost, "/v2/messages", body)
	if first != second {
		t.Fatalf("signature not deterministic: %q vs %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}

	if Sign("other-secret", "1700000000", http.MethodPost, "/v2/messages", body) == first {
		t.Fatal("different secrets produced the same signature")
	}
	if Sign("secret", "1700000001", http.MethodPost, "/v2/messages", body) == first {
		t.Fatal("different timestamps produced the same signature")
	}
	if Sign("secret", "1700000000", http.MethodPost, "/v2/messages", []byte("{}")) == first {
		t.Fatal("different bodies produced the same signature")
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.Config{
		KakaoAPIKey:    "api-key",
		KakaoAPISecret: "api-secret",
		KakaoBaseURL:   srv.URL,
		KakaoSendPath:  "/v2/messages",
	}, nil)
}

func TestSendSignsRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "api-key" {
			t.Errorf("X-Api-Key = %q", got)
		}
		timestamp := r.Header.Get("X-Timestamp")
		if timestamp == "" {
			t.Error("missing X-Timestamp")
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		want := Sign("api-secret", timestamp, r.Method, r.URL.Path, body)
		if got := r.Header.Get("X-Signature"); got != want {
			t.Errorf("X-Signature = %q, want %q", got, want)
		}

		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["type"] != "sms" {
			t.Errorf("type = %v", payload["type"])
		}
		if payload["to"] != "01012345678" {
			t.Errorf("to = %v", payload["to"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"messageId": "msg-1",
			"status":    "SENT",
		})
	})

	result, err := client.Send(context.Background(), SendOptions{
		Recipient: "01012345678",
		Body:      "hello",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.MessageID != "msg-1" || result.Status != "SENT" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSendKakaoRequiresChannel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Send(context.Background(), SendOptions{
		Recipient: "01012345678",
		Body:      "hello",
		Kakao:     true,
	})
	if err == nil {
		t.Fatal("expected error for kakao send without channel key")
	}
}

func TestSendProviderRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "invalid recipient",
		})
	})

	if _, err := client.Send(context.Background(), SendOptions{Recipient: "x", Body: "y"}); err == nil {
		t.Fatal("expected error when provider rejects the message")
	}
}

func TestSendDefaultsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "messageId": "msg-2"})
	})

	result, err := client.Send(context.Background(), SendOptions{Recipient: "01012345678", Body: "hi"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Status != "SENT" {
		t.Fatalf("status = %q, want SENT default", result.Status)
	}
}
