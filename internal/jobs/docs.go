// Package jobs provides scheduled background tasks for the hauling engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the engine needs outside the request path.
//
// # Available Jobs
//
// 1. MissedJobsSweepJob - Runs daily to zero-rate scheduled jobs whose start
// date passed without any driver clocking in
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(zeroRateHandler, sweepSchedule, logger)
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
// The sweep uses a six-field cron expression with seconds. The default
// "0 0 0 * * *" runs once a day at midnight; the schedule comes from
// configuration so deployments can align it with their billing day.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
