package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ViewRefreshJob periodically rebuilds the materialized delivery-order
// views. Runs every minute: the views are a reporting projection and a
// minute of staleness is acceptable, while rebuilding on every write is not.
type ViewRefreshJob struct {
	handler commands.RefreshDeliveryOrderViewsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewViewRefreshJob creates a new job for refreshing delivery-order views.
func NewViewRefreshJob(
	handler commands.RefreshDeliveryOrderViewsCommandHandler,
	logger *slog.Logger,
) *ViewRefreshJob {
	return &ViewRefreshJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "view_refresh_job"),
	}
}

// Start begins the view refresh job to run every minute.
func (j *ViewRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshDeliveryOrderViewsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery-order view refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "View refresh job started (running every minute)")
	return nil
}

// Stop stops the view refresh job.
func (j *ViewRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "View refresh job stopped")
}
