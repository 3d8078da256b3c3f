package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

// LandingRepository persists landing pages. The previous deployment held these
// in a process-local slice, which does not survive stateless invocations.
type LandingRepository struct {
	db *sql.DB
}

func NewLandingRepository(db *sql.DB) *LandingRepository {
	return &LandingRepository{db: db}
}

const landingColumns = `id, academy_id, slug, title, content, published, created_at, updated_at`

func scanLanding(row interface{ Scan(...any) error }) (*models.LandingPage, error) {
	var p models.LandingPage
	if err := row.Scan(&p.ID, &p.AcademyID, &p.Slug, &p.Title, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *LandingRepository) GetByID(ctx context.Context, id int64) (*models.LandingPage, error) {
	query := `SELECT ` + landingColumns + ` FROM landing_pages WHERE id = ?`
	page, err := scanLanding(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get landing page: %w", err)
	}
	return page, nil
}

func (r *LandingRepository) GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error) {
	query := `SELECT ` + landingColumns + ` FROM landing_pages WHERE slug = ?`
	page, err := scanLanding(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get landing page by slug: %w", err)
	}
	return page, nil
}

func (r *LandingRepository) List(ctx context.Context) ([]models.LandingPage, error) {
	query := `SELECT ` + landingColumns + ` FROM landing_pages ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list landing pages: %w", err)
	}
	defer rows.Close()

	var pages []models.LandingPage
	for rows.Next() {
		page, err := scanLanding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan landing page: %w", err)
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

func (r *LandingRepository) Create(ctx context.Context, page *models.LandingPage) (*models.LandingPage, error) {
	const query = `
INSERT INTO landing_pages (academy_id, slug, title, content, published)
VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, page.AcademyID, page.Slug, page.Title, page.Content, page.Published)
	if err != nil {
		return nil, fmt.Errorf("insert landing page: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("landing last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

type LandingUpdate struct {
	Title     *string
	Content   *string
	Published *bool
}

func (r *LandingRepository) Update(ctx context.Context, id int64, update LandingUpdate) (*models.LandingPage, error) {
	query := `UPDATE landing_pages SET updated_at = NOW()`
	args := []any{}
	if update.Title != nil {
		query += `, title = ?`
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		query += `, content = ?`
		args = append(args, *update.Content)
	}
	if update.Published != nil {
		query += `, published = ?`
		args = append(args, *update.Published)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update landing page: %w", err)
	}
	return r.GetByID(ctx, id)
}
