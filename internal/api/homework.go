package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/service"
)

type submitHomeworkRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	AttachmentName string `json:"attachmentName"`
	// Base64-encoded file body; json unmarshals it straight into bytes.
	AttachmentData []byte `json:"attachmentData"`
}

type gradeHomeworkRequest struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// handleSubmitHomework accepts submissions from students only: grading roles
// outrank STUDENT but do not submit, so this is an exact-role check rather
// than a requireRole minimum.
func (s *Server) handleSubmitHomework(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user.Role != models.RoleStudent {
		writeError(w, http.StatusForbidden, "insufficient_role", "only students can submit homework")
		return
	}
	if !user.HomeworkEnabled {
		writeError(w, http.StatusForbidden, "feature_disabled", "homework is not enabled for this account")
		return
	}

	var req submitHomeworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}
	submission, err := s.homework.Submit(r.Context(), service.SubmitHomeworkInput{
		StudentID:      user.ID,
		Title:          req.Title,
		Content:        req.Content,
		AttachmentName: req.AttachmentName,
		AttachmentData: req.AttachmentData,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "submission", submission)
}

// handleListHomework scopes students to their own submissions; teachers and
// above may filter by any student.
func (s *Server) handleListHomework(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	q := r.URL.Query()

	var studentID *int64
	if user.Role.AtLeast(models.RoleTeacher) {
		if raw := q.Get("studentId"); raw != "" {
			id, err := parseID(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_request", "invalid studentId")
				return
			}
			studentID = &id
		}
	} else {
		studentID = &user.ID
	}

	submissions, err := s.homework.List(r.Context(), studentID, q.Get("status"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if submissions == nil {
		submissions = []models.HomeworkSubmission{}
	}
	writeResource(w, http.StatusOK, "submissions", submissions)
}

// handleGetHomework returns one submission. Students see only their own;
// other students' submissions read as not found.
func (s *Server) handleGetHomework(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid submission id")
		return
	}

	submission, err := s.homework.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	user := userFromContext(r.Context())
	if !user.Role.AtLeast(models.RoleTeacher) && submission.StudentID != user.ID {
		s.serviceError(w, service.ErrNotFound)
		return
	}
	writeResource(w, http.StatusOK, "submission", submission)
}

func (s *Server) handleGradeHomework(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid submission id")
		return
	}

	var req gradeHomeworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	grader := userFromContext(r.Context())
	submission, err := s.homework.Grade(r.Context(), id, req.Score, req.Feedback, grader.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "submission", submission)
}

func (s *Server) handleProcessGrading(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
			return
		}
		limit = parsed
	}

	report, err := s.homework.ProcessGrading(r.Context(), limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "report", report)
}
