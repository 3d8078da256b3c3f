package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
)

type createLandingRequest struct {
	AcademyID *int64 `json:"academyId"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

type updateLandingRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func (s *Server) handleGetLandingPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.landing.GetPublished(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "page", page)
}

func (s *Server) handleListLandingPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.landing.List(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if pages == nil {
		pages = []models.LandingPage{}
	}
	writeResource(w, http.StatusOK, "pages", pages)
}

func (s *Server) handleCreateLandingPage(w http.ResponseWriter, r *http.Request) {
	var req createLandingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	page, err := s.landing.Create(r.Context(), service.CreateLandingInput{
		AcademyID: req.AcademyID,
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "page", page)
}

func (s *Server) handleUpdateLandingPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page id")
		return
	}

	var req updateLandingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	page, err := s.landing.Update(r.Context(), id, repository.LandingUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "page", page)
}
