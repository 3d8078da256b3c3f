package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/auth"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type UserService struct {
	users    *repository.UserRepository
	students *repository.StudentRepository
}

func NewUserService(users *repository.UserRepository, students *repository.StudentRepository) *UserService {
	return &UserService{users: users, students: students}
}

// EnsureSuperAdmin creates the bootstrap super admin when configured and absent.
func (s *UserService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = s.Create(ctx, CreateUserInput{
		Email:    email,
		Password: password,
		Name:     "Super Admin",
		Role:     string(models.RoleSuperAdmin),
		Approved: true,
	})
	if err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}
	return nil
}

type CreateUserInput struct {
	Email           string
	Password        string
	Name            string
	Phone           string
	Role            string
	AcademyID       *int64
	Approved        bool
	AIChatEnabled   bool
	HomeworkEnabled bool
	StudyEnabled    bool
	Grade           string
	School          string
	AttendanceCode  string
	ClassID         *int64
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	role, ok := models.ParseRole(input.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		AcademyID:       input.AcademyID,
		Email:           input.Email,
		PasswordHash:    hash,
		Name:            input.Name,
		Phone:           input.Phone,
		Role:            role,
		Approved:        input.Approved,
		AIChatEnabled:   input.AIChatEnabled,
		HomeworkEnabled: input.HomeworkEnabled,
		StudyEnabled:    input.StudyEnabled,
		Active:          true,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if role == models.RoleStudent {
		student := &models.Student{
			UserID:         created.ID,
			AcademyID:      input.AcademyID,
			ClassID:        input.ClassID,
			Grade:          input.Grade,
			School:         input.School,
			AttendanceCode: input.AttendanceCode,
		}
		if err := s.students.Upsert(ctx, student); err != nil {
			return nil, err
		}
	}
	return created, nil
}

func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	return s.users.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListPending returns unapproved active users awaiting an admin decision.
func (s *UserService) ListPending(ctx context.Context) ([]models.User, error) {
	approved := false
	active := true
	return s.users.List(ctx, repository.UserFilter{Approved: &approved, Active: &active})
}

// Approve sets the approval flag. Idempotent: approving an approved user
// leaves the row unchanged and returns the same state.
func (s *UserService) Approve(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if err := s.users.Approve(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

type UpdateUserInput struct {
	Name            *string
	Phone           *string
	Role            *string
	AcademyID       *int64
	AIChatEnabled   *bool
	HomeworkEnabled *bool
	StudyEnabled    *bool
	Active          *bool
	Grade           *string
	School          *string
	ClassID         *int64
}

func (s *UserService) Update(ctx context.Context, userID int64, input UpdateUserInput) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	update := repository.UserUpdate{
		Name:            input.Name,
		Phone:           input.Phone,
		AcademyID:       input.AcademyID,
		AIChatEnabled:   input.AIChatEnabled,
		HomeworkEnabled: input.HomeworkEnabled,
		StudyEnabled:    input.StudyEnabled,
		Active:          input.Active,
	}
	if input.Role != nil {
		role, ok := models.ParseRole(*input.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *input.Role)
		}
		update.Role = &role
	}
	if err := s.users.Update(ctx, userID, update); err != nil {
		return nil, err
	}

	if user.Role == models.RoleStudent && (input.Grade != nil || input.School != nil || input.ClassID != nil || input.AcademyID != nil) {
		student, err := s.students.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			student = &models.Student{UserID: userID}
		}
		if input.Grade != nil {
			student.Grade = *input.Grade
		}
		if input.School != nil {
			student.School = *input.School
		}
		if input.ClassID != nil {
			student.ClassID = input.ClassID
		}
		if input.AcademyID != nil {
			student.AcademyID = input.AcademyID
		}
		if err := s.students.Upsert(ctx, student); err != nil {
			return nil, err
		}
	}

	return s.users.FindByID(ctx, userID)
}

// Deactivate soft-deletes; the row stays for audit history.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.Deactivate(ctx, userID)
}

func (s *UserService) GetStudentProfile(ctx context.Context, userID int64) (*models.Student, error) {
	return s.students.GetByUserID(ctx, userID)
}
