package submission

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/arenacontrol/internal/services/console/storage"
	"github.com/louisbranch/arenacontrol/internal/services/console/storage/sqlite"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestGate(t *testing.T) (*Gate, *sqlite.Store, *fakeClock) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	gate := NewGate(store)
	gate.now = clock.Now
	return gate, store, clock
}

func TestGateLifecycle(t *testing.T) {
	gate, _, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "dictator.create")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := gate.Begin(ctx, token, "dictator.create"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := gate.Begin(ctx, token, "dictator.create"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second Begin = %v, want ErrInFlight", err)
	}
	if err := gate.Settle(ctx, token, true); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if err := gate.Begin(ctx, token, "dictator.create"); !errors.Is(err, ErrSettled) {
		t.Fatalf("Begin after settle = %v, want ErrSettled", err)
	}
}

func TestGateFailedSettleAllowsRetry(t *testing.T) {
	gate, store, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "battle.create")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := gate.Begin(ctx, token, "battle.create"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := gate.Settle(ctx, token, false); err != nil {
		t.Fatalf("Settle(false): %v", err)
	}
	submission, err := store.GetSubmission(ctx, token)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if submission.State != storage.SubmissionIdle {
		t.Fatalf("state = %q, want idle", submission.State)
	}
	if err := gate.Begin(ctx, token, "battle.create"); err != nil {
		t.Fatalf("retry Begin: %v", err)
	}
}

func TestGateRejectsUnknownAndExpiredTokens(t *testing.T) {
	gate, _, clock := newTestGate(t)
	ctx := context.Background()

	if err := gate.Begin(ctx, "", "dictator.create"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Begin(blank) = %v", err)
	}
	if err := gate.Begin(ctx, "forged", "dictator.create"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Begin(forged) = %v", err)
	}

	token, err := gate.Issue(ctx, "contestant.create")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	clock.now = clock.now.Add(tokenTTL + time.Minute)
	if err := gate.Begin(ctx, token, "contestant.create"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Begin(expired) = %v, want ErrUnknownToken", err)
	}
}

func TestGateRejectsTokenFromAnotherForm(t *testing.T) {
	gate, store, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "dictator.create")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := gate.Begin(ctx, token, "battle.create"); !errors.Is(err, ErrFormMismatch) {
		t.Fatalf("Begin(other form) = %v, want ErrFormMismatch", err)
	}
	submission, err := store.GetSubmission(ctx, token)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if submission.State != storage.SubmissionIdle {
		t.Fatalf("state = %q, want idle", submission.State)
	}
	if err := gate.Begin(ctx, token, "dictator.create"); err != nil {
		t.Fatalf("Begin(own form): %v", err)
	}
}

func TestGateSettleRequiresInFlight(t *testing.T) {
	gate, _, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "dictator.update")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := gate.Settle(ctx, token, true); err == nil {
		t.Fatal("Settle on idle token succeeded")
	}
	if err := gate.Settle(ctx, "missing", true); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Settle(missing) = %v, want ErrUnknownToken", err)
	}
}

func TestGatePurgesExpiredTokensAtMostEveryInterval(t *testing.T) {
	gate, store, clock := newTestGate(t)
	ctx := context.Background()
	start := clock.now

	issue := func(at time.Duration) string {
		t.Helper()
		clock.now = start.Add(at)
		token, err := gate.Issue(ctx, "dictator.create")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		return token
	}
	exists := func(token string) bool {
		t.Helper()
		_, err := store.GetSubmission(ctx, token)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("GetSubmission: %v", err)
		}
		return err == nil
	}

	first := issue(0)
	second := issue(20 * time.Minute)

	issue(tokenTTL + 10*time.Minute)
	if exists(first) {
		t.Fatal("expired token survived purge")
	}
	if !exists(second) {
		t.Fatal("live token purged")
	}

	issue(tokenTTL + 30*time.Minute)
	if !exists(second) {
		t.Fatal("purge ran again within interval")
	}

	issue(tokenTTL + 41*time.Minute)
	if exists(second) {
		t.Fatal("expired token survived next purge")
	}
}
