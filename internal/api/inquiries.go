package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/service"
)

type createInquiryRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type respondInquiryRequest struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req createInquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	inquiry, err := s.inquiries.Create(r.Context(), service.CreateInquiryInput{
		Name:    req.Name,
		Contact: req.Contact,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "inquiry", inquiry)
}

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.inquiries.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	writeResource(w, http.StatusOK, "inquiries", inquiries)
}

func (s *Server) handleRespondInquiry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid inquiry id")
		return
	}

	var req respondInquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	responder := userFromContext(r.Context())
	inquiry, err := s.inquiries.Respond(r.Context(), id, req.Status, req.Response, responder.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "inquiry", inquiry)
}
