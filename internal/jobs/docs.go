// Package jobs provides scheduled background tasks for the drive-through service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations on live ordering sessions.
//
// # Available Jobs
//
// 1. SessionExpiryJob - Runs every 30 seconds and closes sessions idle for longer than SESSION_IDLE_TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireIdleSessionsHandler, 15*time.Minute, logger)
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
// - Sessions that fail to archive stay live and are retried on the next run
// - Sessions touched between listing and expiry are skipped
// - Failed job starts return an error before anything is scheduled
package jobs
