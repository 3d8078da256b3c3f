package aigen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Platform identifies a marketing channel the academy writes content for.
type Platform string

const (
	PlatformInstagram  Platform = "instagram"
	PlatformKarrot     Platform = "karrot"
	PlatformNaverBlog  Platform = "naver-blog"
	PlatformNaverPlace Platform = "naver-place"
	PlatformTikTok     Platform = "tiktok"
	PlatformYouTube    Platform = "youtube"
)

var platformInstructions = map[Platform]string{
	PlatformInstagram:  "Write a short Instagram caption for a tutoring academy. Include a hook line and 3-5 hashtags.",
	PlatformKarrot:     "Write a friendly neighborhood post for the Karrot local community app promoting a tutoring academy.",
	PlatformNaverBlog:  "Write a Naver blog post for a tutoring academy with a title, an introduction, and two to three sections.",
	PlatformNaverPlace: "Write a concise Naver Place business description for a tutoring academy.",
	PlatformTikTok:     "Write a TikTok short-video script for a tutoring academy: a hook, three beats, and a call to action.",
	PlatformYouTube:    "Write a YouTube video description for a tutoring academy, including a summary and timestamps placeholder.",
}

// ParsePlatform validates a platform path segment.
func ParsePlatform(value string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := platformInstructions[p]; !ok {
		return "", false
	}
	return p, true
}

// InstructionFor returns the content instruction for a platform.
func InstructionFor(platform Platform) string {
	return platformInstructions[platform]
}

const gradingInstruction = `You are grading a student's homework submission. Respond with a JSON object
{"score": <integer 0-100>, "feedback": "<two or three sentences for the student>"} and nothing else.`

// GradingInstruction is the fixed instruction used by AI-assisted grading.
func GradingInstruction() string {
	return gradingInstruction
}

// GradingPrompt builds the grading prompt for one submission.
func GradingPrompt(title, content string) string {
	return fmt.Sprintf("Homework title: %s\n\nSubmission:\n%s", title, content)
}

type GradingResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ParseGradingResult decodes the model output, tolerating code fences around the JSON.
func ParseGradingResult(text string) (GradingResult, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var result GradingResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return GradingResult{}, fmt.Errorf("parse grading result: %w", err)
	}
	if result.Score < 0 || result.Score > 100 {
		return GradingResult{}, fmt.Errorf("score out of range: %d", result.Score)
	}
	return result, nil
}
