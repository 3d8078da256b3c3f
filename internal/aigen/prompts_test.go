package aigen

import (
	"strings"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	for _, value := range []string{"instagram", "karrot", "naver-blog", "naver-place", "tiktok", "youtube"} {
		platform, ok := ParsePlatform(value)
		if !ok {
			t.Fatalf("ParsePlatform(%q) rejected a valid platform", value)
		}
		if InstructionFor(platform) == "" {
			t.Fatalf("no instruction for %q", value)
		}
	}

	if platform, ok := ParsePlatform("  TikTok "); !ok || platform != PlatformTikTok {
		t.Fatalf("ParsePlatform did not normalize case and whitespace: %q %v", platform, ok)
	}

	for _, value := range []string{"", "facebook", "naver"} {
		if _, ok := ParsePlatform(value); ok {
			t.Fatalf("ParsePlatform(%q) accepted an invalid platform", value)
		}
	}
}

func TestGradingPrompt(t *testing.T) {
	prompt := GradingPrompt("Unit 3 essay", "My submission body")
	if !strings.Contains(prompt, "Unit 3 essay") || !strings.Contains(prompt, "My submission body") {
		t.Fatalf("prompt missing inputs: %q", prompt)
	}
}

func TestParseGradingResult(t *testing.T) {
	result, err := ParseGradingResult(`{"score": 85, "feedback": "Good work."}`)
	if err != nil {
		t.Fatalf("ParseGradingResult: %v", err)
	}
	if result.Score != 85 || result.Feedback != "Good work." {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestParseGradingResultCodeFence(t *testing.T) {
	text := "```json\n{\"score\": 70, \"feedback\": \"Review section two.\"}\n```"
	result, err := ParseGradingResult(text)
	if err != nil {
		t.Fatalf("ParseGradingResult with fences: %v", err)
	}
	if result.Score != 70 {
		t.Fatalf("score = %d, want 70", result.Score)
	}
}

func TestParseGradingResultRejectsBadInput(t *testing.T) {
	if _, err := ParseGradingResult("not json at all"); err == nil {
		t.Fatal("accepted non-JSON output")
	}
	if _, err := ParseGradingResult(`{"score": 150, "feedback": "x"}`); err == nil {
		t.Fatal("accepted out-of-range score")
	}
	if _, err := ParseGradingResult(`{"score": -1, "feedback": "x"}`); err == nil {
		t.Fatal("accepted negative score")
	}
}
