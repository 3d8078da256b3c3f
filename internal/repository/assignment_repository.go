package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type AssignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `id, user_id, bot_id, active, created_at, updated_at`

func scanAssignment(row interface{ Scan(...any) error }) (*models.BotAssignment, error) {
	var a models.BotAssignment
	if err := row.Scan(&a.ID, &a.UserID, &a.BotID, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.BotAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM bot_assignments WHERE id = ?`
	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

func (r *AssignmentRepository) FindByUserAndBot(ctx context.Context, userID int64, botID string) (*models.BotAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM bot_assignments WHERE user_id = ? AND bot_id = ?`
	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, userID, botID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return assignment, nil
}

func (r *AssignmentRepository) ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.BotAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM bot_assignments WHERE user_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.BotAssignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, *assignment)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) Create(ctx context.Context, userID int64, botID string) (*models.BotAssignment, error) {
	const query = `INSERT INTO bot_assignments (user_id, bot_id, active) VALUES (?, ?, 1)`
	res, err := r.db.ExecContext(ctx, query, userID, botID)
	if err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("assignment last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *AssignmentRepository) SetActive(ctx context.Context, id int64, active bool) error {
	const query = `UPDATE bot_assignments SET active = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, active, id); err != nil {
		return fmt.Errorf("set assignment active: %w", err)
	}
	return nil
}
