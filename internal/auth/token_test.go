package auth

import "testing"

func TestNewSessionTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("NewSessionToken: %v", err)
		}
		if token == "" {
			t.Fatal("empty token")
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d iterations", i)
		}
		seen[token] = true
	}
}

func TestHashTokenStable(t *testing.T) {
	token, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	first := HashToken(token)
	second := HashToken(token)
	if first != second {
		t.Fatalf("hash not stable: %q vs %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first == token {
		t.Fatal("hash equals token")
	}

	other := HashToken(token + "x")
	if other == first {
		t.Fatal("different tokens hashed to same value")
	}
}
