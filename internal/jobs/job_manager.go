package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	occupancyReportJob *OccupancyReportJob
}

func NewJobManager(
	occupancyHandler occupancyReader,
	occupancySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		occupancyReportJob: NewOccupancyReportJob(occupancyHandler, occupancySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.occupancyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start occupancy report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.occupancyReportJob.Stop()
}
