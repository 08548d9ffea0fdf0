package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// driverReleaseSchedule runs the reconciliation sweep once a minute.
// The sweep is cheap and idempotent; a minute bounds how long a crashed
// completion can keep a driver out of the free pool.
const driverReleaseSchedule = "0 * * * * *"

// DriverReleaseJob periodically frees drivers whose delivering flag is no
// longer backed by an in-transit order.
type DriverReleaseJob struct {
	handler commands.ReleaseOrphanedDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverReleaseJob creates the reconciliation job.
func NewDriverReleaseJob(
	handler commands.ReleaseOrphanedDriversCommandHandler,
	logger *slog.Logger,
) *DriverReleaseJob {
	return &DriverReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_release_job"),
	}
}

// Start begins the reconciliation sweep on its schedule.
func (j *DriverReleaseJob) Start() error {
	_, err := j.cron.AddFunc(driverReleaseSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReleaseOrphanedDriversCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver release sweep failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released orphaned drivers", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver release job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *DriverReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver release job stopped")
}
