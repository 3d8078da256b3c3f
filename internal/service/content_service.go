package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hagwonlab/academy-api/internal/aigen"
)

// ContentService fronts the text-generation API for platform marketing drafts.
type ContentService struct {
	generator Generator
}

func NewContentService(generator Generator) *ContentService {
	return &ContentService{generator: generator}
}

// GenerateForPlatform produces a content draft for one marketing platform.
func (s *ContentService) GenerateForPlatform(ctx context.Context, platform, prompt string) (string, error) {
	parsed, ok := aigen.ParsePlatform(platform)
	if !ok {
		return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, platform)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	text, err := s.generator.Generate(ctx, aigen.GenerateOptions{
		Instruction: aigen.InstructionFor(parsed),
		Prompt:      prompt,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return text, nil
}
