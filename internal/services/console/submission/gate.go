// Package submission guards mutating forms against duplicate posts.
//
// Every rendered form carries a token. A token moves idle -> submitting when
// its form is posted and settles once the backend accepted it. A failed post
// returns the token to idle so the retained form can be retried.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/arenacontrol/internal/platform/id"
	"github.com/louisbranch/arenacontrol/internal/services/console/storage"
)

const (
	// tokenTTL bounds how long an issued form stays submittable.
	tokenTTL = 24 * time.Hour
	// purgeInterval limits how often expired tokens are deleted.
	purgeInterval = 30 * time.Minute
)

var (
	// ErrInFlight is returned while an earlier post of the same form is running.
	ErrInFlight = errors.New("submission already in flight")
	// ErrSettled is returned when the form was already accepted.
	ErrSettled = errors.New("submission already settled")
	// ErrUnknownToken is returned for missing, expired, or forged tokens.
	ErrUnknownToken = errors.New("unknown submission token")
	// ErrFormMismatch is returned when a token is posted to a form other than
	// the one it was issued for. The token is left untouched.
	ErrFormMismatch = errors.New("submission token issued for another form")
)

// Gate issues and transitions submission tokens.
type Gate struct {
	store storage.SubmissionStore
	now   func() time.Time

	mu        sync.Mutex
	lastPurge time.Time
}

// NewGate builds a gate over store.
func NewGate(store storage.SubmissionStore) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Issue creates an idle token for form.
func (g *Gate) Issue(ctx context.Context, form string) (string, error) {
	g.maybePurge(ctx)
	token, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate submission token: %w", err)
	}
	now := g.now().UTC()
	if err := g.store.PutSubmission(ctx, storage.Submission{
		Token:     token,
		Form:      form,
		State:     storage.SubmissionIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return "", err
	}
	return token, nil
}

// Begin claims token for one backend call of form.
func (g *Gate) Begin(ctx context.Context, token, form string) error {
	if token == "" {
		return ErrUnknownToken
	}
	g.maybePurge(ctx)

	submission, err := g.store.GetSubmission(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUnknownToken
	}
	if err != nil {
		return err
	}
	if g.now().Sub(submission.CreatedAt) > tokenTTL {
		return ErrUnknownToken
	}
	if submission.Form != form {
		return ErrFormMismatch
	}

	state, changed, err := g.store.TransitionSubmission(ctx, token, storage.SubmissionIdle, storage.SubmissionSubmitting, g.now())
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUnknownToken
	}
	if err != nil {
		return err
	}
	if changed {
		return nil
	}
	switch state {
	case storage.SubmissionSubmitting:
		return ErrInFlight
	case storage.SubmissionSettled:
		return ErrSettled
	default:
		return fmt.Errorf("submission %s in unexpected state %q", token, state)
	}
}

// Settle releases a claimed token. Success settles it for good; failure
// returns it to idle.
func (g *Gate) Settle(ctx context.Context, token string, ok bool) error {
	to := storage.SubmissionIdle
	if ok {
		to = storage.SubmissionSettled
	}
	_, changed, err := g.store.TransitionSubmission(ctx, token, storage.SubmissionSubmitting, to, g.now())
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUnknownToken
	}
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("settle submission %s: not in flight", token)
	}
	return nil
}

func (g *Gate) maybePurge(ctx context.Context) {
	now := g.now()
	g.mu.Lock()
	if now.Sub(g.lastPurge) < purgeInterval {
		g.mu.Unlock()
		return
	}
	g.lastPurge = now
	g.mu.Unlock()

	if _, err := g.store.DeleteSubmissionsBefore(ctx, now.Add(-tokenTTL)); err != nil {
		log.Printf("purge submissions: %v", err)
	}
}
