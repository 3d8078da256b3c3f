package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type LandingService struct {
	pages *repository.LandingRepository
}

func NewLandingService(pages *repository.LandingRepository) *LandingService {
	return &LandingService{pages: pages}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CreateLandingInput struct {
	AcademyID *int64
	Slug      string
	Title     string
	Content   string
	Published bool
}

func (s *LandingService) Create(ctx context.Context, input CreateLandingInput) (*models.LandingPage, error) {
	input.Slug = strings.TrimSpace(strings.ToLower(input.Slug))
	if !slugPattern.MatchString(input.Slug) {
		return nil, fmt.Errorf("%w: slug must be lowercase letters, digits and hyphens", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	existing, err := s.pages.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: slug already in use", ErrConflict)
	}

	page := &models.LandingPage{
		AcademyID: input.AcademyID,
		Slug:      input.Slug,
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
	}
	return s.pages.Create(ctx, page)
}

func (s *LandingService) List(ctx context.Context) ([]models.LandingPage, error) {
	return s.pages.List(ctx)
}

// GetPublished resolves a public landing page by slug. Unpublished pages are
// invisible to the public surface.
func (s *LandingService) GetPublished(ctx context.Context, slug string) (*models.LandingPage, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil || !page.Published {
		return nil, ErrNotFound
	}
	return page, nil
}

func (s *LandingService) Update(ctx context.Context, id int64, update repository.LandingUpdate) (*models.LandingPage, error) {
	existing, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.pages.Update(ctx, id, update)
}
