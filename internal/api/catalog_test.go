package api

import (
	"net/http"
	"testing"
)

func TestListProductsActiveOnlyFlag(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/store/products?activeOnly=notabool")
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad activeOnly returned %d, want 400", resp.StatusCode)
	}
	envelope := decodeError(t, resp)
	if envelope.Code != "invalid_request" {
		t.Fatalf("bad activeOnly code = %q", envelope.Code)
	}
}
