// Package jobs provides scheduled background tasks for the invoicing system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the invoicing service.
//
// # Available Jobs
//
// 1. SendingMonitorJob - Runs every minute to report invoices whose delivery
// confirmation is overdue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, threshold, logger)
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
// The monitor job only observes: it logs stuck invoices and query failures,
// never retries or re-sends notifications.
package jobs
