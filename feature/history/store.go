package history

import (
	"context"
	"fmt"

	"emoji-sync/core/reconcile"

	"gorm.io/gorm"
)

// Store persists reconciliation outcomes.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the runs table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("migrate %s: %w", Run{}.TableName(), err)
	}
	return nil
}

// Record stores an outcome and the error the run returned, if any.
func (s *Store) Record(ctx context.Context, outcome *reconcile.Outcome, runErr error) error {
	run := FromOutcome(outcome, runErr)
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("record run %s: %w", outcome.RunID, err)
	}
	return nil
}

// Recent returns the last limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("started_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// FromOutcome converts an outcome into a history row.
func FromOutcome(outcome *reconcile.Outcome, runErr error) Run {
	run := Run{
		RunID:      outcome.RunID,
		State:      string(outcome.State),
		Aborted:    outcome.Aborted(),
		Kept:       outcome.Kept,
		Created:    outcome.Created,
		Deleted:    outcome.Deleted,
		Failed:     outcome.Failed,
		StartedAt:  outcome.StartedAt,
		FinishedAt: outcome.FinishedAt,
	}
	if runErr != nil {
		msg := runErr.Error()
		if len(msg) > maxErrorLength {
			msg = msg[:maxErrorLength]
		}
		run.Error = msg
	}
	return run
}
