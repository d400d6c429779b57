// Package jobs provides scheduled background tasks for the storefront backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required in demo deployments.
//
// # Available Jobs
//
// 1. FulfillmentProgressionJob - Periodically advances every paid, undelivered
// order one step along the fulfillment timeline and records a tracking event
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceFulfillmentsHandler, "*/30 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The progression job schedule is configured per deployment. Seconds-level
// cron expressions are supported so demos can step orders quickly without a
// human operator touching the tracking endpoints.
//
// # Error Handling
//
// A failed tick is logged and the next tick retries from the current database
// state. Each tick runs in a single transaction, so a partial advance is
// never persisted.
package jobs
