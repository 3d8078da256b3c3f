package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type InquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

const inquiryColumns = `id, name, contact, subject, body, status, COALESCE(response, ''), responder_id, created_at, updated_at`

func scanInquiry(row interface{ Scan(...any) error }) (*models.Inquiry, error) {
	var i models.Inquiry
	var status string
	if err := row.Scan(&i.ID, &i.Name, &i.Contact, &i.Subject, &i.Body, &status, &i.Response, &i.ResponderID, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.Status = models.InquiryStatus(status)
	return &i, nil
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	const query = `INSERT INTO inquiries (name, contact, subject, body, status) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, inquiry.Name, inquiry.Contact, inquiry.Subject, inquiry.Body, string(models.InquiryPending))
	if err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("inquiry last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = ?`
	inquiry, err := scanInquiry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return inquiry, nil
}

func (r *InquiryRepository) List(ctx context.Context, status *models.InquiryStatus) ([]models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *inquiry)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) Respond(ctx context.Context, id int64, status models.InquiryStatus, response string, responderID int64) (*models.Inquiry, error) {
	const query = `
UPDATE inquiries SET status = ?, response = NULLIF(?, ''), responder_id = ?, updated_at = NOW()
WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, string(status), response, responderID, id); err != nil {
		return nil, fmt.Errorf("respond inquiry: %w", err)
	}
	return r.GetByID(ctx, id)
}
