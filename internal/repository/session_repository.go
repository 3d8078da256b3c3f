package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hagwonlab/academy-api/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	const query = `INSERT INTO sessions (user_id, token_hash, expires_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	const query = `
SELECT id, user_id, token_hash, created_at, expires_at, revoked_at
FROM sessions WHERE token_hash = ?`
	row := r.db.QueryRowContext(ctx, query, tokenHash)
	var s models.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.CreatedAt, &s.ExpiresAt, &s.RevokedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) RevokeByUser(ctx context.Context, userID int64) error {
	const query = `UPDATE sessions SET revoked_at = NOW() WHERE user_id = ? AND revoked_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired and revoked session rows, returning the count removed.
func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at < NOW() OR revoked_at IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge rows affected: %w", err)
	}
	return affected, nil
}

func (r *SessionRepository) InsertLoginLog(ctx context.Context, userID int64, ip, userAgent string) error {
	const query = `INSERT INTO user_login_logs (user_id, ip, user_agent) VALUES (?, NULLIF(?, ''), NULLIF(?, ''))`
	if _, err := r.db.ExecContext(ctx, query, userID, ip, userAgent); err != nil {
		return fmt.Errorf("insert login log: %w", err)
	}
	return nil
}
