package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
)

type createAcademyRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Plan    string `json:"plan"`
}

type updateAcademyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Plan    *string `json:"plan"`
	Active  *bool   `json:"active"`
}

func (s *Server) handleListAcademies(w http.ResponseWriter, r *http.Request) {
	academies, err := s.academies.List(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if academies == nil {
		academies = []models.Academy{}
	}
	writeResource(w, http.StatusOK, "academies", academies)
}

func (s *Server) handleCreateAcademy(w http.ResponseWriter, r *http.Request) {
	var req createAcademyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	academy, err := s.academies.Create(r.Context(), service.CreateAcademyInput{
		Name:    req.Name,
		Code:    req.Code,
		Phone:   req.Phone,
		Address: req.Address,
		Plan:    req.Plan,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "academy", academy)
}

func (s *Server) handleGetAcademy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid academy id")
		return
	}

	academy, err := s.academies.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "academy", academy)
}

func (s *Server) handleUpdateAcademy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid academy id")
		return
	}

	var req updateAcademyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	academy, err := s.academies.Update(r.Context(), id, repository.AcademyUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Plan:    req.Plan,
		Active:  req.Active,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "academy", academy)
}
