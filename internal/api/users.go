package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
)

type createUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	AcademyID       *int64 `json:"academyId"`
	Approved        bool   `json:"approved"`
	AIChatEnabled   bool   `json:"aiChatEnabled"`
	HomeworkEnabled bool   `json:"homeworkEnabled"`
	StudyEnabled    bool   `json:"studyEnabled"`
	Grade           string `json:"grade"`
	School          string `json:"school"`
	AttendanceCode  string `json:"attendanceCode"`
	ClassID         *int64 `json:"classId"`
}

type updateUserRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Role            *string `json:"role"`
	AcademyID       *int64  `json:"academyId"`
	AIChatEnabled   *bool   `json:"aiChatEnabled"`
	HomeworkEnabled *bool   `json:"homeworkEnabled"`
	StudyEnabled    *bool   `json:"studyEnabled"`
	Active          *bool   `json:"active"`
	Grade           *string `json:"grade"`
	School          *string `json:"school"`
	ClassID         *int64  `json:"classId"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var filter repository.UserFilter
	q := r.URL.Query()
	if raw := q.Get("role"); raw != "" {
		role, ok := models.ParseRole(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown role")
			return
		}
		filter.Role = &role
	}
	if raw := q.Get("academyId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid academyId")
			return
		}
		filter.AcademyID = &id
	}
	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid active flag")
			return
		}
		filter.Active = &active
	}

	users, err := s.users.List(r.Context(), filter)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeResource(w, http.StatusOK, "users", users)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	user, err := s.users.Create(r.Context(), service.CreateUserInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		Phone:           req.Phone,
		Role:            req.Role,
		AcademyID:       req.AcademyID,
		Approved:        req.Approved,
		AIChatEnabled:   req.AIChatEnabled,
		HomeworkEnabled: req.HomeworkEnabled,
		StudyEnabled:    req.StudyEnabled,
		Grade:           req.Grade,
		School:          req.School,
		AttendanceCode:  req.AttendanceCode,
		ClassID:         req.ClassID,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusCreated, "user", user)
}

func (s *Server) handleListPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListPending(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeResource(w, http.StatusOK, "users", users)
}

func (s *Server) handleApproveUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64 `json:"userId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "userId is required")
		return
	}

	user, err := s.users.Approve(r.Context(), req.UserID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "user", user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	payload := map[string]any{
		"success": true,
		"user":    user,
	}
	if user.Role == models.RoleStudent {
		student, err := s.users.GetStudentProfile(r.Context(), id)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		if student != nil {
			payload["student"] = student
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	user, err := s.users.Update(r.Context(), id, service.UpdateUserInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Role:            req.Role,
		AcademyID:       req.AcademyID,
		AIChatEnabled:   req.AIChatEnabled,
		HomeworkEnabled: req.HomeworkEnabled,
		StudyEnabled:    req.StudyEnabled,
		Active:          req.Active,
		Grade:           req.Grade,
		School:          req.School,
		ClassID:         req.ClassID,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}
	writeResource(w, http.StatusOK, "user", user)
}

func (s *Server) handleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	if err := s.users.Deactivate(r.Context(), id); err != nil {
		s.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
