package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type AcademyService struct {
	academies *repository.AcademyRepository
}

func NewAcademyService(academies *repository.AcademyRepository) *AcademyService {
	return &AcademyService{academies: academies}
}

type CreateAcademyInput struct {
	Name    string
	Code    string
	Phone   string
	Address string
	Plan    string
}

func (s *AcademyService) List(ctx context.Context) ([]models.Academy, error) {
	return s.academies.List(ctx)
}

func (s *AcademyService) Get(ctx context.Context, id int64) (*models.Academy, error) {
	academy, err := s.academies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if academy == nil {
		return nil, ErrNotFound
	}
	return academy, nil
}

func (s *AcademyService) Create(ctx context.Context, input CreateAcademyInput) (*models.Academy, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(strings.ToUpper(input.Code))
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	existing, err := s.academies.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: academy code already in use", ErrConflict)
	}

	plan := input.Plan
	if plan == "" {
		plan = "basic"
	}
	academy := &models.Academy{
		Name:    input.Name,
		Code:    input.Code,
		Phone:   input.Phone,
		Address: input.Address,
		Plan:    plan,
		Active:  true,
	}
	return s.academies.Create(ctx, academy)
}

func (s *AcademyService) Update(ctx context.Context, id int64, update repository.AcademyUpdate) (*models.Academy, error) {
	existing, err := s.academies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.academies.Update(ctx, id, update)
}
