package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type AssignmentService struct {
	assignments *repository.AssignmentRepository
	users       *repository.UserRepository
}

func NewAssignmentService(assignments *repository.AssignmentRepository, users *repository.UserRepository) *AssignmentService {
	return &AssignmentService{assignments: assignments, users: users}
}

func (s *AssignmentService) ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.BotAssignment, error) {
	return s.assignments.ListByUser(ctx, userID, activeOnly)
}

// Assign grants a user access to a bot. A (user, bot) pair is unique: when a
// row already exists it is reactivated instead of duplicated.
func (s *AssignmentService) Assign(ctx context.Context, userID int64, botID string) (*models.BotAssignment, error) {
	botID = strings.TrimSpace(botID)
	if botID == "" {
		return nil, fmt.Errorf("%w: botId is required", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	existing, err := s.assignments.FindByUserAndBot(ctx, userID, botID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.Active {
			if err := s.assignments.SetActive(ctx, existing.ID, true); err != nil {
				return nil, err
			}
		}
		return s.assignments.GetByID(ctx, existing.ID)
	}
	return s.assignments.Create(ctx, userID, botID)
}

// Deactivate revokes bot access without deleting the row.
func (s *AssignmentService) Deactivate(ctx context.Context, id int64) error {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if assignment == nil {
		return ErrNotFound
	}
	return s.assignments.SetActive(ctx, id, false)
}
