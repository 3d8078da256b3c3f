package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
)

func (s *Server) handleRequestCharge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	user := userFromContext(r.Context())
	charge, err := s.points.RequestCharge(r.Context(), user.ID, req.Amount)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "chargeRequest", charge)
}

func (s *Server) handleListOwnCharges(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	charges, err := s.points.ListForUser(r.Context(), user.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if charges == nil {
		charges = []models.PointChargeRequest{}
	}
	writeResource(w, http.StatusOK, "chargeRequests", charges)
}

func (s *Server) handleListCharges(w http.ResponseWriter, r *http.Request) {
	charges, err := s.points.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if charges == nil {
		charges = []models.PointChargeRequest{}
	}
	writeResource(w, http.StatusOK, "chargeRequests", charges)
}

func (s *Server) handleApproveCharge(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid charge request id")
		return
	}

	admin := userFromContext(r.Context())
	charge, err := s.points.Approve(r.Context(), id, admin.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "chargeRequest", charge)
}

func (s *Server) handleRejectCharge(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid charge request id")
		return
	}

	admin := userFromContext(r.Context())
	charge, err := s.points.Reject(r.Context(), id, admin.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "chargeRequest", charge)
}
