// Package jobs provides scheduled background tasks for the restaurant floor.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and are started and stopped
// together through JobManager:
//
//	jobManager := jobs.NewJobManager(occupancyHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OccupancyReportJob logs how many tables are empty, occupied and grouped, and
// how many orders are still active. The schedule accepts any cron spec or
// descriptor understood by robfig/cron, such as "@every 30s" or "*/5 * * * *".
//
// Job failures are logged and never stop the scheduler.
package jobs
