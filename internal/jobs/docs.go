// Package jobs provides scheduled background tasks for the shipment
// tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational checks.
//
// # Available Jobs
//
// 1. StoreLivenessJob - Runs every 30 seconds to verify the backing store is reachable
// 2. PendingBacklogJob - Runs every minute to report the number of shipments still pending pickup
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the store health probe and repository
//	jobManager := jobs.NewJobManager(storeHealth, shipmentRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Liveness failures are logged as errors; the job keeps running so recovery is observed
// - Backlog measurements log at debug level and escalate to warnings above the threshold
// - Failed job starts will stop any already running jobs
package jobs
