package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs how many orders are still waiting in
// each non-terminal status. It gives the kitchen a heartbeat view of the
// backlog without anyone polling the API.
type BacklogReportJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates the backlog reporting job. The report runs
// once per minute.
func NewBacklogReportJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start begins the backlog report job.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.report(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}

func (j *BacklogReportJob) report(ctx context.Context) {
	query, err := queries.NewGetAllOrdersQuery(nil, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog report job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
		return
	}

	counts := map[string]int{
		order.New.String():        0,
		order.Preparing.String():  0,
		order.Delivering.String(): 0,
	}
	for _, o := range orders {
		if o.Status == order.Delivered.String() {
			continue
		}
		counts[o.Status]++
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"new", counts[order.New.String()],
		"preparing", counts[order.Preparing.String()],
		"delivering", counts[order.Delivering.String()],
	)
}
