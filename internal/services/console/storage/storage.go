package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a submission token does not exist.
var ErrNotFound = errors.New("submission not found")

// SubmissionState is the lifecycle position of one rendered form.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSettled    SubmissionState = "settled"
)

// Submission is one issued form token.
type Submission struct {
	Token     string
	Form      string
	State     SubmissionState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubmissionStore persists submission tokens.
type SubmissionStore interface {
	PutSubmission(ctx context.Context, submission Submission) error
	GetSubmission(ctx context.Context, token string) (Submission, error)
	// TransitionSubmission atomically moves token from one state to another.
	// When the token is in any other state it reports the current state and
	// false without changing anything.
	TransitionSubmission(ctx context.Context, token string, from, to SubmissionState, at time.Time) (SubmissionState, bool, error)
	DeleteSubmissionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Store is the composite of console storage concerns.
type Store interface {
	SubmissionStore
	Close() error
}
