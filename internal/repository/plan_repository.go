package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, title, COALESCE(description, ''), currency, price_minor_units, COALESCE(features, ''), featured, display_order, active, created_at, updated_at`

func scanPlan(row interface{ Scan(...any) error }) (*models.PricingPlan, error) {
	var p models.PricingPlan
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Currency, &p.PriceMinorUnits, &p.Features, &p.Featured, &p.DisplayOrder, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) List(ctx context.Context, activeOnly bool) ([]models.PricingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM pricing_plans`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY featured DESC, display_order ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.PricingPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.PricingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM pricing_plans WHERE id = ?`
	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	const query = `
INSERT INTO pricing_plans (title, description, currency, price_minor_units, features, featured, display_order, active)
VALUES (?, NULLIF(?, ''), ?, ?, NULLIF(?, ''), ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, plan.Title, plan.Description, plan.Currency, plan.PriceMinorUnits, plan.Features, plan.Featured, plan.DisplayOrder, plan.Active)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("plan last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

type PlanUpdate struct {
	Title           *string
	Description     *string
	Currency        *string
	PriceMinorUnits *int
	Features        *string
	Featured        *bool
	DisplayOrder    *int
	Active          *bool
}

func (r *PlanRepository) Update(ctx context.Context, id int64, update PlanUpdate) (*models.PricingPlan, error) {
	query := `UPDATE pricing_plans SET updated_at = NOW()`
	args := []any{}
	if update.Title != nil {
		query += `, title = ?`
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		query += `, description = NULLIF(?, '')`
		args = append(args, *update.Description)
	}
	if update.Currency != nil {
		query += `, currency = ?`
		args = append(args, *update.Currency)
	}
	if update.PriceMinorUnits != nil {
		query += `, price_minor_units = ?`
		args = append(args, *update.PriceMinorUnits)
	}
	if update.Features != nil {
		query += `, features = NULLIF(?, '')`
		args = append(args, *update.Features)
	}
	if update.Featured != nil {
		query += `, featured = ?`
		args = append(args, *update.Featured)
	}
	if update.DisplayOrder != nil {
		query += `, display_order = ?`
		args = append(args, *update.DisplayOrder)
	}
	if update.Active != nil {
		query += `, active = ?`
		args = append(args, *update.Active)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return r.GetByID(ctx, id)
}
