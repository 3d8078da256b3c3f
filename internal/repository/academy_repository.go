package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type AcademyRepository struct {
	db *sql.DB
}

func NewAcademyRepository(db *sql.DB) *AcademyRepository {
	return &AcademyRepository{db: db}
}

const academyColumns = `id, name, code, COALESCE(phone, ''), COALESCE(address, ''), plan, active, created_at, updated_at`

func scanAcademy(row interface{ Scan(...any) error }) (*models.Academy, error) {
	var a models.Academy
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.Phone, &a.Address, &a.Plan, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AcademyRepository) List(ctx context.Context) ([]models.Academy, error) {
	query := `SELECT ` + academyColumns + ` FROM academies ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list academies: %w", err)
	}
	defer rows.Close()

	var academies []models.Academy
	for rows.Next() {
		academy, err := scanAcademy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan academy: %w", err)
		}
		academies = append(academies, *academy)
	}
	return academies, rows.Err()
}

func (r *AcademyRepository) GetByID(ctx context.Context, id int64) (*models.Academy, error) {
	query := `SELECT ` + academyColumns + ` FROM academies WHERE id = ?`
	academy, err := scanAcademy(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get academy: %w", err)
	}
	return academy, nil
}

func (r *AcademyRepository) GetByCode(ctx context.Context, code string) (*models.Academy, error) {
	query := `SELECT ` + academyColumns + ` FROM academies WHERE code = ?`
	academy, err := scanAcademy(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get academy by code: %w", err)
	}
	return academy, nil
}

func (r *AcademyRepository) Create(ctx context.Context, academy *models.Academy) (*models.Academy, error) {
	const query = `
INSERT INTO academies (name, code, phone, address, plan, active)
VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)`
	res, err := r.db.ExecContext(ctx, query, academy.Name, academy.Code, academy.Phone, academy.Address, academy.Plan, academy.Active)
	if err != nil {
		return nil, fmt.Errorf("insert academy: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("academy last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

type AcademyUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	Plan    *string
	Active  *bool
}

func (r *AcademyRepository) Update(ctx context.Context, id int64, update AcademyUpdate) (*models.Academy, error) {
	query := `UPDATE academies SET updated_at = NOW()`
	args := []any{}
	if update.Name != nil {
		query += `, name = ?`
		args = append(args, *update.Name)
	}
	if update.Phone != nil {
		query += `, phone = NULLIF(?, '')`
		args = append(args, *update.Phone)
	}
	if update.Address != nil {
		query += `, address = NULLIF(?, '')`
		args = append(args, *update.Address)
	}
	if update.Plan != nil {
		query += `, plan = ?`
		args = append(args, *update.Plan)
	}
	if update.Active != nil {
		query += `, active = ?`
		args = append(args, *update.Active)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update academy: %w", err)
	}
	return r.GetByID(ctx, id)
}
