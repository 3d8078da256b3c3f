package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hagwonlab/academy-api/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeResource emits the success envelope with the resource under its own key.
func writeResource(w http.ResponseWriter, status int, key string, value any) {
	writeJSON(w, status, map[string]any{
		"success": true,
		key:       value,
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"code":    code,
		"error":   message,
	})
}

// serviceError maps service-layer sentinels onto HTTP statuses and stable
// error codes. Unexpected errors surface a generic message; the cause is
// logged server-side only, except in development.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, service.ErrNotApproved):
		writeError(w, http.StatusForbidden, "not_approved", "account is awaiting approval")
	case errors.Is(err, service.ErrSessionInvalid):
		writeError(w, http.StatusUnauthorized, "invalid_token", "missing or expired session")
	default:
		s.log.Error("handler error", "err", err)
		message := "internal error"
		if s.cfg.IsDevelopment() {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, "server_error", message)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
