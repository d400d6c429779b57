package jobs

import (
	"context"
	"log/slog"

	"vastrakala/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentProgressionJob manages the scheduled progression of paid orders
// along the fulfillment timeline. Each tick moves every in-progress order one
// step and appends the matching tracking event.
type FulfillmentProgressionJob struct {
	handler  commands.AdvanceFulfillmentsCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewFulfillmentProgressionJob creates a new job for advancing fulfillments.
// Uses AdvanceFulfillmentsCommandHandler to process the progression on the
// given cron schedule (seconds-granularity expressions are supported).
func NewFulfillmentProgressionJob(
	handler commands.AdvanceFulfillmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *FulfillmentProgressionJob {
	return &FulfillmentProgressionJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "fulfillment_progression_job"),
	}
}

// Start begins the fulfillment progression job on its schedule.
func (j *FulfillmentProgressionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewAdvanceFulfillmentsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment progression command creation failed", "error", err)
			return
		}

		advanced, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment progression job failed", "error", err)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Fulfillment progression tick completed", "orders_advanced", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment progression job started", "schedule", j.schedule)
	return nil
}

// Stop stops the fulfillment progression job.
func (j *FulfillmentProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment progression job stopped")
}
