package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOccupancyReportSchedule is used when no schedule is configured.
const DefaultOccupancyReportSchedule = "@every 1m"

type occupancyReader interface {
	Handle(ctx context.Context, query queries.GetTableOccupancyQuery) (queries.GetTableOccupancyQueryResponse, error)
}

// OccupancyReportJob periodically logs a snapshot of table occupancy.
type OccupancyReportJob struct {
	handler  occupancyReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOccupancyReportJob(handler occupancyReader, schedule string, logger *slog.Logger) *OccupancyReportJob {
	if schedule == "" {
		schedule = DefaultOccupancyReportSchedule
	}
	return &OccupancyReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "occupancy_report_job"),
	}
}

// Start registers the report on the configured schedule.
func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started", "schedule", j.schedule)
	return nil
}

// Report runs the occupancy query once and logs the result.
func (j *OccupancyReportJob) Report(ctx context.Context) {
	res, err := j.handler.Handle(ctx, queries.NewGetTableOccupancyQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Table occupancy",
		"emptyTables", res.EmptyTables,
		"occupiedTables", res.OccupiedTables,
		"groupedTables", res.GroupedTables,
		"activeOrders", res.ActiveOrders,
	)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OccupancyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}
