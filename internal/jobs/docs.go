// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// RetailerStatsJob recomputes each retailer's order count, revenue, distinct
// customers and last order date from active orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshRetailerStatsHandler, "@every 5m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (with seconds) and descriptors
// such as "@every 5m" or "@hourly". Overlapping runs are skipped.
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. A schedule that cannot
// be parsed fails StartAll.
package jobs
