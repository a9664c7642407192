package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	retailerStatsJob *RetailerStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshRetailerStatsHandler RetailerStatsRefresher,
	retailerStatsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		retailerStatsJob: NewRetailerStatsJob(refreshRetailerStatsHandler, retailerStatsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.retailerStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start retailer stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retailerStatsJob.Stop()
}
