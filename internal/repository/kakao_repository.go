package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type KakaoRepository struct {
	db *sql.DB
}

func NewKakaoRepository(db *sql.DB) *KakaoRepository {
	return &KakaoRepository{db: db}
}

const channelColumns = `id, academy_id, channel_key, sender_number, active, created_at`

func scanChannel(row interface{ Scan(...any) error }) (*models.KakaoChannel, error) {
	var c models.KakaoChannel
	if err := row.Scan(&c.ID, &c.AcademyID, &c.ChannelKey, &c.SenderNumber, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *KakaoRepository) ListChannels(ctx context.Context, academyID *int64) ([]models.KakaoChannel, error) {
	query := `SELECT ` + channelColumns + ` FROM kakao_channels`
	args := []any{}
	if academyID != nil {
		query += ` WHERE academy_id = ?`
		args = append(args, *academyID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()

	var channels []models.KakaoChannel
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		channels = append(channels, *channel)
	}
	return channels, rows.Err()
}

func (r *KakaoRepository) GetChannelByKey(ctx context.Context, channelKey string) (*models.KakaoChannel, error) {
	query := `SELECT ` + channelColumns + ` FROM kakao_channels WHERE channel_key = ?`
	channel, err := scanChannel(r.db.QueryRowContext(ctx, query, channelKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get channel: %w", err)
	}
	return channel, nil
}

func (r *KakaoRepository) CreateChannel(ctx context.Context, channel *models.KakaoChannel) (*models.KakaoChannel, error) {
	const query = `INSERT INTO kakao_channels (academy_id, channel_key, sender_number, active) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, channel.AcademyID, channel.ChannelKey, channel.SenderNumber, channel.Active)
	if err != nil {
		return nil, fmt.Errorf("insert channel: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("channel last insert id: %w", err)
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+channelColumns+` FROM kakao_channels WHERE id = ?`, id)
	created, err := scanChannel(row)
	if err != nil {
		return nil, fmt.Errorf("reload channel: %w", err)
	}
	return created, nil
}

func (r *KakaoRepository) InsertMessageLog(ctx context.Context, log *models.MessageLog) error {
	const query = `
INSERT INTO message_logs (academy_id, channel_key, recipient, kind, body, status, provider_message_id)
VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, NULLIF(?, ''))`
	if _, err := r.db.ExecContext(ctx, query, log.AcademyID, log.ChannelKey, log.Recipient, string(log.Kind), log.Body, log.Status, log.ProviderMessageID); err != nil {
		return fmt.Errorf("insert message log: %w", err)
	}
	return nil
}

func (r *KakaoRepository) ListMessageLogs(ctx context.Context, academyID *int64, limit int) ([]models.MessageLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
SELECT id, academy_id, COALESCE(channel_key, ''), recipient, kind, body, status, COALESCE(provider_message_id, ''), created_at
FROM message_logs`
	args := []any{}
	if academyID != nil {
		query += ` WHERE academy_id = ?`
		args = append(args, *academyID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list message logs: %w", err)
	}
	defer rows.Close()

	var logs []models.MessageLog
	for rows.Next() {
		var l models.MessageLog
		var kind string
		if err := rows.Scan(&l.ID, &l.AcademyID, &l.ChannelKey, &l.Recipient, &kind, &l.Body, &l.Status, &l.ProviderMessageID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message log: %w", err)
		}
		l.Kind = models.MessageKind(kind)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
