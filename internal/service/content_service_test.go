package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hagwonlab/academy-api/internal/aigen"
)

type fakeGenerator struct {
	lastOpts aigen.GenerateOptions
	text     string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, opts aigen.GenerateOptions) (string, error) {
	f.lastOpts = opts
	return f.text, f.err
}

func TestGenerateForPlatform(t *testing.T) {
	gen := &fakeGenerator{text: "a caption"}
	svc := NewContentService(gen)

	text, err := svc.GenerateForPlatform(context.Background(), "instagram", "promote the spring class")
	if err != nil {
		t.Fatalf("GenerateForPlatform: %v", err)
	}
	if text != "a caption" {
		t.Fatalf("text = %q", text)
	}
	if gen.lastOpts.Prompt != "promote the spring class" {
		t.Fatalf("prompt = %q", gen.lastOpts.Prompt)
	}
	if gen.lastOpts.Instruction != aigen.InstructionFor(aigen.PlatformInstagram) {
		t.Fatalf("instruction = %q", gen.lastOpts.Instruction)
	}
}

func TestGenerateForPlatformUnknownPlatform(t *testing.T) {
	svc := NewContentService(&fakeGenerator{text: "x"})

	_, err := svc.GenerateForPlatform(context.Background(), "myspace", "anything")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateForPlatformBlankPrompt(t *testing.T) {
	svc := NewContentService(&fakeGenerator{text: "x"})

	_, err := svc.GenerateForPlatform(context.Background(), "tiktok", "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateForPlatformGeneratorFailure(t *testing.T) {
	svc := NewContentService(&fakeGenerator{err: errors.New("upstream down")})

	_, err := svc.GenerateForPlatform(context.Background(), "youtube", "promote")
	if err == nil {
		t.Fatal("expected error from generator")
	}
	if !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("error does not wrap cause: %v", err)
	}
}
