package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"b2better/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultRetailerStatsSchedule = "@every 5m"

// scheduleParser accepts six-field expressions with a leading seconds field
// ("0 */5 * * * *") and descriptors ("@every 5m", "@hourly").
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule reports whether schedule can be used by the jobs in this
// package. An empty schedule selects the job's default and is valid.
func ValidateSchedule(schedule string) error {
	if schedule == "" {
		return nil
	}
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return fmt.Errorf("schedule %q needs six fields (seconds first) or a descriptor: %w", schedule, err)
	}
	return nil
}

// RetailerStatsRefresher recomputes the denormalized retailer statistics.
type RetailerStatsRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshRetailerStatsCommand) (int, error)
}

// RetailerStatsJob periodically refreshes order count, revenue, customer count
// and last order date of every retailer. A run still in progress makes the next
// tick a no-op.
type RetailerStatsJob struct {
	handler  RetailerStatsRefresher
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRetailerStatsJob(handler RetailerStatsRefresher, schedule string, logger *slog.Logger) *RetailerStatsJob {
	if schedule == "" {
		schedule = DefaultRetailerStatsSchedule
	}
	return &RetailerStatsJob{
		handler:  handler,
		schedule: schedule,
		timeout:  time.Minute,
		cron: cron.New(
			cron.WithParser(scheduleParser),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "retailer_stats_job"),
	}
}

// Start schedules the job. It returns an error for an unparsable schedule.
func (j *RetailerStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retailer stats job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *RetailerStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Retailer stats job stopped")
}

func (j *RetailerStatsJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	started := time.Now()
	refreshed, err := j.handler.Handle(ctx, commands.NewRefreshRetailerStatsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Retailer stats refresh failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Retailer stats refreshed",
		"retailers", refreshed,
		"duration", time.Since(started))
}
