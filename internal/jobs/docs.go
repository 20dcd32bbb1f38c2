// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic reconciliation the delivery service needs.
//
// # Available Jobs
//
// 1. DriverReleaseJob - Runs every 30 seconds to release busy drivers whose
// orders have reached a terminal state.
// 2. NotificationRelayJob - Runs every 5 seconds to publish unsent order
// events from the outbox table to the message broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log tick failures and retry on the next tick. The relay stamps
// events as sent only after the broker accepts them, so a failed publish is
// retried rather than lost. Failed job starts stop any already running jobs.
package jobs
