package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type PointRepository struct {
	db    *sql.DB
	users *UserRepository
}

func NewPointRepository(db *sql.DB, users *UserRepository) *PointRepository {
	return &PointRepository{db: db, users: users}
}

const chargeColumns = `id, user_id, amount, status, decided_by, created_at, updated_at`

func scanCharge(row interface{ Scan(...any) error }) (*models.PointChargeRequest, error) {
	var c models.PointChargeRequest
	var status string
	if err := row.Scan(&c.ID, &c.UserID, &c.Amount, &status, &c.DecidedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = models.ChargeStatus(status)
	return &c, nil
}

func (r *PointRepository) Create(ctx context.Context, userID int64, amount int) (*models.PointChargeRequest, error) {
	const query = `INSERT INTO point_charge_requests (user_id, amount, status) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, userID, amount, string(models.ChargePending))
	if err != nil {
		return nil, fmt.Errorf("insert charge request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("charge last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *PointRepository) GetByID(ctx context.Context, id int64) (*models.PointChargeRequest, error) {
	query := `SELECT ` + chargeColumns + ` FROM point_charge_requests WHERE id = ?`
	charge, err := scanCharge(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get charge request: %w", err)
	}
	return charge, nil
}

func (r *PointRepository) List(ctx context.Context, userID *int64, status *models.ChargeStatus) ([]models.PointChargeRequest, error) {
	query := `SELECT ` + chargeColumns + ` FROM point_charge_requests WHERE 1 = 1`
	args := []any{}
	if userID != nil {
		query += ` AND user_id = ?`
		args = append(args, *userID)
	}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list charge requests: %w", err)
	}
	defer rows.Close()

	var charges []models.PointChargeRequest
	for rows.Next() {
		charge, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan charge request: %w", err)
		}
		charges = append(charges, *charge)
	}
	return charges, rows.Err()
}

// Approve marks a pending request approved and credits the balance in one
// transaction. Returns false when the request was not pending.
func (r *PointRepository) Approve(ctx context.Context, id, decidedBy int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin approve tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
UPDATE point_charge_requests SET status = ?, decided_by = ?, updated_at = NOW()
WHERE id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, query, string(models.ChargeApproved), decidedBy, id, string(models.ChargePending))
	if err != nil {
		return false, fmt.Errorf("approve charge: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("approve rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	charge, err := scanCharge(tx.QueryRowContext(ctx, `SELECT `+chargeColumns+` FROM point_charge_requests WHERE id = ?`, id))
	if err != nil {
		return false, fmt.Errorf("reload charge: %w", err)
	}
	if err := r.users.AddPoints(ctx, tx, charge.UserID, charge.Amount); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit approve tx: %w", err)
	}
	return true, nil
}

// Reject marks a pending request rejected. Returns false when not pending.
func (r *PointRepository) Reject(ctx context.Context, id, decidedBy int64) (bool, error) {
	const query = `
UPDATE point_charge_requests SET status = ?, decided_by = ?, updated_at = NOW()
WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query, string(models.ChargeRejected), decidedBy, id, string(models.ChargePending))
	if err != nil {
		return false, fmt.Errorf("reject charge: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reject rows affected: %w", err)
	}
	return affected > 0, nil
}
