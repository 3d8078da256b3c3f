package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hagwonlab/academy-api/internal/aigen"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/repository"
)

// Generator produces text completions; satisfied by *aigen.Client.
type Generator interface {
	Generate(ctx context.Context, opts aigen.GenerateOptions) (string, error)
}

// AttachmentStore persists uploaded files; satisfied by *storage.Uploader.
type AttachmentStore interface {
	UploadAttachment(ctx context.Context, data []byte, filename string) (string, error)
}

type HomeworkService struct {
	homework    *repository.HomeworkRepository
	attachments AttachmentStore
	generator   Generator
	log         *slog.Logger
}

func NewHomeworkService(homework *repository.HomeworkRepository, attachments AttachmentStore, generator Generator, log *slog.Logger) *HomeworkService {
	return &HomeworkService{
		homework:    homework,
		attachments: attachments,
		generator:   generator,
		log:         log,
	}
}

type SubmitHomeworkInput struct {
	StudentID      int64
	Title          string
	Content        string
	AttachmentName string
	AttachmentData []byte
}

func (s *HomeworkService) Submit(ctx context.Context, input SubmitHomeworkInput) (*models.HomeworkSubmission, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	submission := &models.HomeworkSubmission{
		StudentID: input.StudentID,
		Title:     input.Title,
		Content:   input.Content,
	}
	if len(input.AttachmentData) > 0 {
		url, err := s.attachments.UploadAttachment(ctx, input.AttachmentData, input.AttachmentName)
		if err != nil {
			return nil, fmt.Errorf("upload attachment: %w", err)
		}
		submission.AttachmentURL = url
	}
	return s.homework.Create(ctx, submission)
}

func (s *HomeworkService) List(ctx context.Context, studentID *int64, status string) ([]models.HomeworkSubmission, error) {
	if status == "" {
		return s.homework.List(ctx, studentID, nil)
	}
	parsed := models.HomeworkStatus(status)
	switch parsed {
	case models.HomeworkSubmitted, models.HomeworkGrading, models.HomeworkGraded:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.homework.List(ctx, studentID, &parsed)
}

func (s *HomeworkService) Get(ctx context.Context, id int64) (*models.HomeworkSubmission, error) {
	submission, err := s.homework.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrNotFound
	}
	return submission, nil
}

// Grade records a manual grade from a teacher.
func (s *HomeworkService) Grade(ctx context.Context, id int64, score int, feedback string, gradedBy int64) (*models.HomeworkSubmission, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidInput)
	}
	submission, err := s.homework.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrNotFound
	}
	return s.homework.Grade(ctx, id, score, feedback, &gradedBy)
}

type GradingReport struct {
	Processed int `json:"processed"`
	Graded    int `json:"graded"`
	Failed    int `json:"failed"`
}

// ProcessGrading runs AI-assisted grading over queued submissions. Each
// submission is claimed first so a concurrent run cannot grade it twice; a
// failed generation releases the claim back to the queue.
func (s *HomeworkService) ProcessGrading(ctx context.Context, limit int) (GradingReport, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	status := models.HomeworkSubmitted
	queued, err := s.homework.List(ctx, nil, &status)
	if err != nil {
		return GradingReport{}, err
	}

	var report GradingReport
	for _, submission := range queued {
		if report.Processed >= limit {
			break
		}
		claimed, err := s.homework.ClaimForGrading(ctx, submission.ID)
		if err != nil {
			return report, err
		}
		if !claimed {
			continue
		}
		report.Processed++

		text, err := s.generator.Generate(ctx, aigen.GenerateOptions{
			Instruction: aigen.GradingInstruction(),
			Prompt:      aigen.GradingPrompt(submission.Title, submission.Content),
		})
		if err != nil {
			s.log.Error("grading generation failed", "submission", submission.ID, "err", err)
			report.Failed++
			_ = s.homework.ReleaseClaim(ctx, submission.ID)
			continue
		}

		result, err := aigen.ParseGradingResult(text)
		if err != nil {
			s.log.Error("grading result unparseable", "submission", submission.ID, "err", err)
			report.Failed++
			_ = s.homework.ReleaseClaim(ctx, submission.ID)
			continue
		}

		if _, err := s.homework.Grade(ctx, submission.ID, result.Score, result.Feedback, nil); err != nil {
			return report, err
		}
		report.Graded++
	}
	return report, nil
}
