package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, COALESCE(description, ''), price, points_price, active, featured, display_order, created_at, updated_at`

// productOrderClause is the catalog ordering: featured items first, then the
// curated display order, then newest.
const productOrderClause = `featured DESC, display_order ASC, created_at DESC`

func scanProduct(row interface{ Scan(...any) error }) (*models.StoreProduct, error) {
	var p models.StoreProduct
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.PointsPrice, &p.Active, &p.Featured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, activeOnly bool) ([]models.StoreProduct, error) {
	query := `SELECT ` + productColumns + ` FROM store_products`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY ` + productOrderClause

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.StoreProduct
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.StoreProduct, error) {
	query := `SELECT ` + productColumns + ` FROM store_products WHERE id = ?`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.StoreProduct) (*models.StoreProduct, error) {
	const query = `
INSERT INTO store_products (name, description, price, points_price, active, featured, display_order)
VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.PointsPrice, product.Active, product.Featured, product.DisplayOrder)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("product last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

type ProductUpdate struct {
	Name         *string
	Description  *string
	Price        *int
	PointsPrice  *int
	Active       *bool
	Featured     *bool
	DisplayOrder *int
}

func (r *ProductRepository) Update(ctx context.Context, id int64, update ProductUpdate) (*models.StoreProduct, error) {
	query := `UPDATE store_products SET updated_at = NOW()`
	args := []any{}
	if update.Name != nil {
		query += `, name = ?`
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		query += `, description = NULLIF(?, '')`
		args = append(args, *update.Description)
	}
	if update.Price != nil {
		query += `, price = ?`
		args = append(args, *update.Price)
	}
	if update.PointsPrice != nil {
		query += `, points_price = ?`
		args = append(args, *update.PointsPrice)
	}
	if update.Active != nil {
		query += `, active = ?`
		args = append(args, *update.Active)
	}
	if update.Featured != nil {
		query += `, featured = ?`
		args = append(args, *update.Featured)
	}
	if update.DisplayOrder != nil {
		query += `, display_order = ?`
		args = append(args, *update.DisplayOrder)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return r.GetByID(ctx, id)
}
