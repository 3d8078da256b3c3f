package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hagwonlab/academy-api/internal/models"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `user_id, academy_id, class_id, COALESCE(grade, ''), COALESCE(school, ''), COALESCE(attendance_code, '')`

func scanStudent(row interface{ Scan(...any) error }) (*models.Student, error) {
	var s models.Student
	if err := row.Scan(&s.UserID, &s.AcademyID, &s.ClassID, &s.Grade, &s.School, &s.AttendanceCode); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = ?`
	student, err := scanStudent(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (r *StudentRepository) Upsert(ctx context.Context, student *models.Student) error {
	const query = `
INSERT INTO students (user_id, academy_id, class_id, grade, school, attendance_code)
VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))
ON DUPLICATE KEY UPDATE
    academy_id = VALUES(academy_id),
    class_id = VALUES(class_id),
    grade = VALUES(grade),
    school = VALUES(school),
    attendance_code = VALUES(attendance_code)`
	if _, err := r.db.ExecContext(ctx, query, student.UserID, student.AcademyID, student.ClassID, student.Grade, student.School, student.AttendanceCode); err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}
	return nil
}

// ListOrphans returns student rows with no academy attached.
func (r *StudentRepository) ListOrphans(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE academy_id IS NULL`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orphan students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, *student)
	}
	return students, rows.Err()
}

// AssignAcademy attaches an academy to a single student row.
func (r *StudentRepository) AssignAcademy(ctx context.Context, userID, academyID int64) error {
	const query = `UPDATE students SET academy_id = ? WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, academyID, userID); err != nil {
		return fmt.Errorf("assign academy: %w", err)
	}
	return nil
}

// AssignAcademyToOrphans attaches an academy to every student row missing one
// and returns the number of rows repaired.
func (r *StudentRepository) AssignAcademyToOrphans(ctx context.Context, academyID int64) (int64, error) {
	const query = `UPDATE students SET academy_id = ? WHERE academy_id IS NULL`
	res, err := r.db.ExecContext(ctx, query, academyID)
	if err != nil {
		return 0, fmt.Errorf("assign academy to orphans: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("orphan rows affected: %w", err)
	}
	return affected, nil
}
