package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// EligibilityRefreshJob is the name the refresh run is logged under
const EligibilityRefreshJob = "refresh_eligibility"

// Refresher recomputes cached eligibility flags; FacultyService satisfies it
type Refresher interface {
	RefreshEligibility(ctx context.Context) (int, error)
}

// EligibilityRefresher runs the refresher on a cron schedule so the cached
// isEligible flag follows the passage of time between writes
type EligibilityRefresher struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewEligibilityRefresher creates a refresher for a standard cron expression or descriptor such as "@daily"
func NewEligibilityRefresher(refresher Refresher, schedule string, logger zerolog.Logger) *EligibilityRefresher {
	cronLogger := cronLogAdapter{logger: logger}
	return &EligibilityRefresher{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		refresher: refresher,
		schedule:  schedule,
		timeout:   5 * time.Minute,
		logger:    logger,
	}
}

// Start registers the job and starts the scheduler
func (r *EligibilityRefresher) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		_, _ = r.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("invalid eligibility refresh schedule %q: %w", r.schedule, err)
	}

	r.cron.Start()
	r.logger.Info().Str("job", EligibilityRefreshJob).Str("schedule", r.schedule).Msg("Cron job scheduled")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (r *EligibilityRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info().Str("job", EligibilityRefreshJob).Msg("Cron job stopped")
}

// RunOnce performs a single refresh and logs its outcome
func (r *EligibilityRefresher) RunOnce(ctx context.Context) (int, error) {
	started := time.Now()
	r.logger.Info().Str("job", EligibilityRefreshJob).Msg("Starting job")

	changed, err := r.refresher.RefreshEligibility(ctx)
	if err != nil {
		r.logger.Error().Err(err).Str("job", EligibilityRefreshJob).Int("changed", changed).Msg("Job failed")
		return changed, err
	}

	r.logger.Info().
		Str("job", EligibilityRefreshJob).
		Int("changed", changed).
		Dur("duration", time.Since(started)).
		Msg("Job completed")
	return changed, nil
}

// cronLogAdapter routes the scheduler's own logging through zerolog
type cronLogAdapter struct {
	logger zerolog.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
