package service

import (
	"context"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

type PointService struct {
	points *repository.PointRepository
}

func NewPointService(points *repository.PointRepository) *PointService {
	return &PointService{points: points}
}

func (s *PointService) RequestCharge(ctx context.Context, userID int64, amount int) (*models.PointChargeRequest, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return s.points.Create(ctx, userID, amount)
}

func (s *PointService) ListForUser(ctx context.Context, userID int64) ([]models.PointChargeRequest, error) {
	return s.points.List(ctx, &userID, nil)
}

func (s *PointService) List(ctx context.Context, status string) ([]models.PointChargeRequest, error) {
	if status == "" {
		return s.points.List(ctx, nil, nil)
	}
	parsed := models.ChargeStatus(status)
	switch parsed {
	case models.ChargePending, models.ChargeApproved, models.ChargeRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.points.List(ctx, nil, &parsed)
}

// Approve credits the balance and marks the request approved in one
// transaction. Only pending requests can be approved.
func (s *PointService) Approve(ctx context.Context, id, decidedBy int64) (*models.PointChargeRequest, error) {
	existing, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	ok, err := s.points.Approve(ctx, id, decidedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request is not pending", ErrConflict)
	}
	return s.points.GetByID(ctx, id)
}

func (s *PointService) Reject(ctx context.Context, id, decidedBy int64) (*models.PointChargeRequest, error) {
	existing, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	ok, err := s.points.Reject(ctx, id, decidedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request is not pending", ErrConflict)
	}
	return s.points.GetByID(ctx, id)
}
