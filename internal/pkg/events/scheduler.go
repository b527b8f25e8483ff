package events

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Scheduler runs cron-triggered functions of a registry
type Scheduler struct {
	cron     *cron.Cron
	registry *Registry
	logger   zerolog.Logger
}

// NewScheduler creates a scheduler evaluating cron expressions in loc
func NewScheduler(registry *Registry, loc *time.Location, logger zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	cronLogger := cronLogAdapter{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(cronParser),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		registry: registry,
		logger:   logger,
	}
}

// Start schedules every cron function and starts the scheduler. Runs use
// ctx as their parent context.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, fn := range s.registry.scheduled() {
		fn := fn
		_, err := s.cron.AddFunc(fn.Trigger.Cron, func() {
			s.registry.run(ctx, fn, Event{Name: ScheduledEventName, TS: time.Now().UnixMilli()})
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", fn.ID, err)
		}
		s.logger.Info().Str("function", fn.ID).Str("cron", fn.Trigger.Cron).Msg("Function scheduled")
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogAdapter routes cron's logging to zerolog
type cronLogAdapter struct {
	logger zerolog.Logger
}

func (l cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
