package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/arenacontrol/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/arenacontrol/internal/services/console/storage"
	"github.com/louisbranch/arenacontrol/internal/services/console/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the SQLite implementation of storage.Store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSubmission inserts a new submission token.
func (s *Store) PutSubmission(ctx context.Context, submission storage.Submission) error {
	if strings.TrimSpace(submission.Token) == "" {
		return fmt.Errorf("submission token is required")
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	if submission.UpdatedAt.IsZero() {
		submission.UpdatedAt = submission.CreatedAt
	}
	if submission.State == "" {
		submission.State = storage.SubmissionIdle
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO submissions (token, form, state, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		submission.Token,
		submission.Form,
		string(submission.State),
		submission.CreatedAt.UTC().Format(timeFormat),
		submission.UpdatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put submission: %w", err)
	}
	return nil
}

// GetSubmission loads one submission token.
func (s *Store) GetSubmission(ctx context.Context, token string) (storage.Submission, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT token, form, state, created_at, updated_at FROM submissions WHERE token = ?`, token)

	var (
		submission storage.Submission
		state      string
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(&submission.Token, &submission.Form, &state, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Submission{}, storage.ErrNotFound
		}
		return storage.Submission{}, fmt.Errorf("get submission: %w", err)
	}
	submission.State = storage.SubmissionState(state)
	var err error
	if submission.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return storage.Submission{}, fmt.Errorf("parse created_at: %w", err)
	}
	if submission.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return storage.Submission{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return submission, nil
}

// TransitionSubmission moves token from one state to another in a single
// conditional UPDATE so concurrent callers cannot both win.
func (s *Store) TransitionSubmission(ctx context.Context, token string, from, to storage.SubmissionState, at time.Time) (storage.SubmissionState, bool, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE submissions SET state = ?, updated_at = ? WHERE token = ? AND state = ?`,
		string(to), at.UTC().Format(timeFormat), token, string(from))
	if err != nil {
		return "", false, fmt.Errorf("transition submission: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("transition submission: %w", err)
	}
	if affected == 1 {
		return to, true, nil
	}

	current, err := s.GetSubmission(ctx, token)
	if err != nil {
		return "", false, err
	}
	return current.State, false, nil
}

// DeleteSubmissionsBefore purges tokens created before cutoff.
func (s *Store) DeleteSubmissionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM submissions WHERE created_at < ?`, cutoff.UTC().Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("delete submissions: %w", err)
	}
	return result.RowsAffected()
}

var _ storage.Store = (*Store)(nil)
