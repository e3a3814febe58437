// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run alongside request handling.
//
// # Available Jobs
//
// 1. BacklogReportJob - Runs every minute to log how many orders sit in each
// non-terminal status.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, logger)
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
// The backlog report job logs failures and keeps its schedule; a failed
// report never interrupts request handling.
package jobs
