// Package jobs provides the scheduled background tasks of the lifecycle
// service, built on github.com/robfig/cron/v3.
//
// The only job today is DriverReleaseJob, which reconciles the driver free
// pool against the set of in-transit orders. Jobs are managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(releaseHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverReleaseJob *DriverReleaseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseOrphanedDriversHandler commands.ReleaseOrphanedDriversCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverReleaseJob: NewDriverReleaseJob(releaseOrphanedDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverReleaseJob.Stop()
}
