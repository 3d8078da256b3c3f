package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type InquiryService struct {
	inquiries *repository.InquiryRepository
}

func NewInquiryService(inquiries *repository.InquiryRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

type CreateInquiryInput struct {
	Name    string
	Contact string
	Subject string
	Body    string
}

func (s *InquiryService) Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Contact) == "" {
		return nil, fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	inquiry := &models.Inquiry{
		Name:    input.Name,
		Contact: input.Contact,
		Subject: input.Subject,
		Body:    input.Body,
	}
	return s.inquiries.Create(ctx, inquiry)
}

func (s *InquiryService) List(ctx context.Context, status string) ([]models.Inquiry, error) {
	if status == "" {
		return s.inquiries.List(ctx, nil)
	}
	parsed, ok := models.ParseInquiryStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.inquiries.List(ctx, &parsed)
}

// Respond records a reply and moves the ticket to the given status.
func (s *InquiryService) Respond(ctx context.Context, id int64, status, response string, responderID int64) (*models.Inquiry, error) {
	parsed, ok := models.ParseInquiryStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if parsed != models.InquiryPending && strings.TrimSpace(response) == "" {
		return nil, fmt.Errorf("%w: response text is required", ErrInvalidInput)
	}

	existing, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.inquiries.Respond(ctx, id, parsed, response, responderID)
}
