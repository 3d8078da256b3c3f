package service

import (
	"context"
	"errors"
	"testing"
)

// These cases exercise input validation that rejects before any repository
// call, so they run without a database.

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(nil, nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Password: "longenough", Name: "N", Role: "STUDENT"}},
		{"short password", CreateUserInput{Email: "a@b.c", Password: "short", Name: "N", Role: "STUDENT"}},
		{"missing name", CreateUserInput{Email: "a@b.c", Password: "longenough", Role: "STUDENT"}},
		{"unknown role", CreateUserInput{Email: "a@b.c", Password: "longenough", Name: "N", Role: "WIZARD"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestRequestChargeValidation(t *testing.T) {
	svc := NewPointService(nil)

	for _, amount := range []int{0, -100} {
		if _, err := svc.RequestCharge(context.Background(), 1, amount); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("amount %d: err = %v, want ErrInvalidInput", amount, err)
		}
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc := NewMessagingService(nil, nil)
	ctx := context.Background()

	if _, err := svc.Send(ctx, SendMessageInput{Kind: "EMAIL", Recipient: "x", Body: "y"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown kind: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Send(ctx, SendMessageInput{Kind: "SMS", Body: "y"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing recipient: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Send(ctx, SendMessageInput{Kind: "SMS", Recipient: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing body: err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateLandingSlugValidation(t *testing.T) {
	svc := NewLandingService(nil)
	ctx := context.Background()

	for _, slug := range []string{"", "Spring Class", "spring_class", "-leading", "trailing-", "한글"} {
		input := CreateLandingInput{Slug: slug, Title: "T"}
		if _, err := svc.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("slug %q: err = %v, want ErrInvalidInput", slug, err)
		}
	}
}

func TestGradeScoreValidation(t *testing.T) {
	svc := NewHomeworkService(nil, nil, nil, nil)

	for _, score := range []int{-1, 101} {
		if _, err := svc.Grade(context.Background(), 1, score, "f", 2); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("score %d: err = %v, want ErrInvalidInput", score, err)
		}
	}
}

func TestSubmitHomeworkValidation(t *testing.T) {
	svc := NewHomeworkService(nil, nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitHomeworkInput{StudentID: 1, Content: "c"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing title: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Submit(ctx, SubmitHomeworkInput{StudentID: 1, Title: "t"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing content: err = %v, want ErrInvalidInput", err)
	}
}
