package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	platform := chi.URLParam(r, "platform")
	text, err := s.content.GenerateForPlatform(r.Context(), platform, req.Prompt)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"platform": platform,
		"content":  text,
	})
}
