package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
)

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := parseID(q.Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "userId query parameter is required")
		return
	}
	activeOnly := false
	if raw := q.Get("active"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid active flag")
			return
		}
	}

	assignments, err := s.assignments.ListByUser(r.Context(), userID, activeOnly)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if assignments == nil {
		assignments = []models.BotAssignment{}
	}
	writeResource(w, http.StatusOK, "assignments", assignments)
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64  `json:"userId"`
		BotID  string `json:"botId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "userId is required")
		return
	}

	assignment, err := s.assignments.Assign(r.Context(), req.UserID, req.BotID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "assignment", assignment)
}

func (s *Server) handleDeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid assignment id")
		return
	}

	if err := s.assignments.Deactivate(r.Context(), id); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
