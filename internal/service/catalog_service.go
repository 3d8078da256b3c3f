package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

// CatalogService covers the read-mostly store products and pricing plans.
type CatalogService struct {
	products *repository.ProductRepository
	plans    *repository.PlanRepository
}

func NewCatalogService(products *repository.ProductRepository, plans *repository.PlanRepository) *CatalogService {
	return &CatalogService{products: products, plans: plans}
}

func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]models.StoreProduct, error) {
	return s.products.List(ctx, activeOnly)
}

type CreateProductInput struct {
	Name         string
	Description  string
	Price        int
	PointsPrice  int
	Active       *bool
	Featured     bool
	DisplayOrder int
}

func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.StoreProduct, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Price < 0 || input.PointsPrice < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	product := &models.StoreProduct{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		PointsPrice:  input.PointsPrice,
		Active:       active,
		Featured:     input.Featured,
		DisplayOrder: input.DisplayOrder,
	}
	return s.products.Create(ctx, product)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, update repository.ProductUpdate) (*models.StoreProduct, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.products.Update(ctx, id, update)
}

func (s *CatalogService) ListPlans(ctx context.Context, activeOnly bool) ([]models.PricingPlan, error) {
	return s.plans.List(ctx, activeOnly)
}

type CreatePlanInput struct {
	Title           string
	Description     string
	Currency        string
	PriceMinorUnits int
	Features        string
	Featured        bool
	DisplayOrder    int
	Active          *bool
}

func (s *CatalogService) CreatePlan(ctx context.Context, input CreatePlanInput) (*models.PricingPlan, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.PriceMinorUnits < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	currency := input.Currency
	if currency == "" {
		currency = "KRW"
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	plan := &models.PricingPlan{
		Title:           input.Title,
		Description:     input.Description,
		Currency:        currency,
		PriceMinorUnits: input.PriceMinorUnits,
		Features:        input.Features,
		Featured:        input.Featured,
		DisplayOrder:    input.DisplayOrder,
		Active:          active,
	}
	return s.plans.Create(ctx, plan)
}

func (s *CatalogService) UpdatePlan(ctx context.Context, id int64, update repository.PlanUpdate) (*models.PricingPlan, error) {
	existing, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.plans.Update(ctx, id, update)
}
