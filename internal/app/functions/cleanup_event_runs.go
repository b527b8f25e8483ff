package functions

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/coursecraft/internal/pkg/events"
)

const defaultRetention = 30 * 24 * time.Hour

// CleanupEventRuns deletes runs older than retention once a day
func CleanupEventRuns(runs RunPruner, retention time.Duration, now func() time.Time) events.Function {
	if retention <= 0 {
		retention = defaultRetention
	}
	return events.Function{
		ID:      CleanupEventRunsID,
		Name:    "Cleanup event runs",
		Trigger: events.Trigger{Cron: CleanupSchedule},
		Handler: func(ctx context.Context, _ events.Event) (interface{}, error) {
			cutoff := now().Add(-retention)
			deleted, err := runs.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				return nil, fmt.Errorf("error deleting event runs: %w", err)
			}
			return map[string]interface{}{"deleted": deleted, "cutoff": cutoff.UTC()}, nil
		},
	}
}
