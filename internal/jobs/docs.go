// Package jobs provides scheduled background tasks for the logistics portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for dispatching.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every five seconds to place the oldest pending order
// onto the least utilized compatible vehicle
// 2. ZoneIndexRefreshJob - Runs every minute to rebuild the in-memory zone
// index from storage
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchJob, zoneRefreshJob)
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
// - The dispatch job ignores expected business outcomes (no pending orders,
//   no compatible vehicle, a capacity race lost to a concurrent assignment)
// - The refresh job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
