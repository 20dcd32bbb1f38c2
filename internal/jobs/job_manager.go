package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverReleaseJob     *DriverReleaseJob
	notificationRelayJob *NotificationRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverReleaseJob:     NewDriverReleaseJob(uowFactory, logger),
		notificationRelayJob: NewNotificationRelayJob(uowFactory, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver release job: %w", err)
	}

	if err := jm.notificationRelayJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.driverReleaseJob.Stop()
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
	jm.driverReleaseJob.Stop()
}
