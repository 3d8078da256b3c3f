package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type HomeworkRepository struct {
	db *sql.DB
}

func NewHomeworkRepository(db *sql.DB) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

const homeworkColumns = `id, student_id, title, content, COALESCE(attachment_url, ''), status, score, COALESCE(feedback, ''), graded_by, created_at, updated_at`

func scanHomework(row interface{ Scan(...any) error }) (*models.HomeworkSubmission, error) {
	var h models.HomeworkSubmission
	var status string
	if err := row.Scan(&h.ID, &h.StudentID, &h.Title, &h.Content, &h.AttachmentURL, &status, &h.Score, &h.Feedback, &h.GradedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	h.Status = models.HomeworkStatus(status)
	return &h, nil
}

func (r *HomeworkRepository) Create(ctx context.Context, submission *models.HomeworkSubmission) (*models.HomeworkSubmission, error) {
	const query = `
INSERT INTO homework_submissions (student_id, title, content, attachment_url, status)
VALUES (?, ?, ?, NULLIF(?, ''), ?)`
	res, err := r.db.ExecContext(ctx, query, submission.StudentID, submission.Title, submission.Content, submission.AttachmentURL, string(models.HomeworkSubmitted))
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("submission last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *HomeworkRepository) GetByID(ctx context.Context, id int64) (*models.HomeworkSubmission, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework_submissions WHERE id = ?`
	submission, err := scanHomework(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return submission, nil
}

func (r *HomeworkRepository) List(ctx context.Context, studentID *int64, status *models.HomeworkStatus) ([]models.HomeworkSubmission, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homework_submissions WHERE 1 = 1`
	args := []any{}
	if studentID != nil {
		query += ` AND student_id = ?`
		args = append(args, *studentID)
	}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.HomeworkSubmission
	for rows.Next() {
		submission, err := scanHomework(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, *submission)
	}
	return submissions, rows.Err()
}

// ClaimForGrading atomically moves a submitted row into GRADING so two
// grading passes cannot pick up the same submission.
func (r *HomeworkRepository) ClaimForGrading(ctx context.Context, id int64) (bool, error) {
	const query = `
UPDATE homework_submissions SET status = ?, updated_at = NOW()
WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query, string(models.HomeworkGrading), id, string(models.HomeworkSubmitted))
	if err != nil {
		return false, fmt.Errorf("claim submission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *HomeworkRepository) Grade(ctx context.Context, id int64, score int, feedback string, gradedBy *int64) (*models.HomeworkSubmission, error) {
	const query = `
UPDATE homework_submissions SET status = ?, score = ?, feedback = NULLIF(?, ''), graded_by = ?, updated_at = NOW()
WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, string(models.HomeworkGraded), score, feedback, gradedBy, id); err != nil {
		return nil, fmt.Errorf("grade submission: %w", err)
	}
	return r.GetByID(ctx, id)
}

// ReleaseClaim puts a claimed submission back to SUBMITTED after a failed grading attempt.
func (r *HomeworkRepository) ReleaseClaim(ctx context.Context, id int64) error {
	const query = `
UPDATE homework_submissions SET status = ?, updated_at = NOW()
WHERE id = ? AND status = ?`
	if _, err := r.db.ExecContext(ctx, query, string(models.HomeworkSubmitted), id, string(models.HomeworkGrading)); err != nil {
		return fmt.Errorf("release submission: %w", err)
	}
	return nil
}
