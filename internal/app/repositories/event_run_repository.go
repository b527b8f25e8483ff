package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/db"
)

// EventRunRepository stores the outcome of event function invocations
type EventRunRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewEventRunRepository creates a new event run repository
func NewEventRunRepository(database *db.PostgresDB) *EventRunRepository {
	return &EventRunRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create records a run
func (r *EventRunRepository) Create(ctx context.Context, run *models.EventRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	sql, args, err := r.sb.Insert("event_runs").
		Columns("id", "function_id", "event_name", "status", "output", "error", "created_at").
		Values(run.ID, run.FunctionID, run.EventName, string(run.Status), run.Output, run.Error, run.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build event run insert query: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error recording event run: %w", err)
	}
	return nil
}

// ListRecent returns the latest runs, optionally filtered by function id
func (r *EventRunRepository) ListRecent(ctx context.Context, functionID string, limit int) ([]*models.EventRun, error) {
	query := r.sb.Select("id", "function_id", "event_name", "status", "output", "error", "created_at").
		From("event_runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if functionID != "" {
		query = query.Where(squirrel.Eq{"function_id": functionID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event run list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing event runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*models.EventRun, 0)
	for rows.Next() {
		var run models.EventRun
		var status string
		if err := rows.Scan(&run.ID, &run.FunctionID, &run.EventName, &status, &run.Output, &run.Error, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event run: %w", err)
		}
		run.Status = models.EventRunStatus(status)
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// DeleteOlderThan removes runs created before cutoff and returns how many were deleted
func (r *EventRunRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("event_runs").
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build event run cleanup query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting event runs: %w", err)
	}
	return tag.RowsAffected(), nil
}
