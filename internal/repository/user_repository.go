package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, academy_id, email, password_hash, name, COALESCE(phone, ''), role, approved, points, ai_chat_enabled, homework_enabled, study_enabled, active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.AcademyID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &role, &u.Approved, &u.Points, &u.AIChatEnabled, &u.HomeworkEnabled, &u.StudyEnabled, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const query = `
INSERT INTO users (academy_id, email, password_hash, name, phone, role, approved, points, ai_chat_enabled, homework_enabled, study_enabled, active)
VALUES (?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.AcademyID, user.Email, user.PasswordHash, user.Name, user.Phone, string(user.Role), user.Approved, user.Points, user.AIChatEnabled, user.HomeworkEnabled, user.StudyEnabled, user.Active)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.FindByID(ctx, id)
}

type UserFilter struct {
	Role      *models.Role
	AcademyID *int64
	Approved  *bool
	Active    *bool
}

func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1 = 1`
	args := []any{}
	if filter.Role != nil {
		query += ` AND role = ?`
		args = append(args, string(*filter.Role))
	}
	if filter.AcademyID != nil {
		query += ` AND academy_id = ?`
		args = append(args, *filter.AcademyID)
	}
	if filter.Approved != nil {
		query += ` AND approved = ?`
		args = append(args, *filter.Approved)
	}
	if filter.Active != nil {
		query += ` AND active = ?`
		args = append(args, *filter.Active)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Approve flips the approval flag. Approving an already approved user is a no-op.
func (r *UserRepository) Approve(ctx context.Context, userID int64) error {
	const query = `UPDATE users SET approved = 1, updated_at = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("approve user: %w", err)
	}
	return nil
}

type UserUpdate struct {
	Name            *string
	Phone           *string
	Role            *models.Role
	AcademyID       *int64
	AIChatEnabled   *bool
	HomeworkEnabled *bool
	StudyEnabled    *bool
	Active          *bool
}

func (r *UserRepository) Update(ctx context.Context, userID int64, update UserUpdate) error {
	query := `UPDATE users SET updated_at = NOW()`
	args := []any{}
	if update.Name != nil {
		query += `, name = ?`
		args = append(args, *update.Name)
	}
	if update.Phone != nil {
		query += `, phone = NULLIF(?, '')`
		args = append(args, *update.Phone)
	}
	if update.Role != nil {
		query += `, role = ?`
		args = append(args, string(*update.Role))
	}
	if update.AcademyID != nil {
		query += `, academy_id = ?`
		args = append(args, *update.AcademyID)
	}
	if update.AIChatEnabled != nil {
		query += `, ai_chat_enabled = ?`
		args = append(args, *update.AIChatEnabled)
	}
	if update.HomeworkEnabled != nil {
		query += `, homework_enabled = ?`
		args = append(args, *update.HomeworkEnabled)
	}
	if update.StudyEnabled != nil {
		query += `, study_enabled = ?`
		args = append(args, *update.StudyEnabled)
	}
	if update.Active != nil {
		query += `, active = ?`
		args = append(args, *update.Active)
	}
	query += ` WHERE id = ?`
	args = append(args, userID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a user. Rows are never removed.
func (r *UserRepository) Deactivate(ctx context.Context, userID int64) error {
	const query = `UPDATE users SET active = 0, updated_at = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// AddPoints credits or debits the points balance within the given transaction.
func (r *UserRepository) AddPoints(ctx context.Context, tx *sql.Tx, userID int64, delta int) error {
	const query = `UPDATE users SET points = GREATEST(points + ?, 0), updated_at = NOW() WHERE id = ?`
	if _, err := tx.ExecContext(ctx, query, delta, userID); err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	return nil
}
