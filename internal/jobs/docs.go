// Package jobs provides scheduled background tasks for the laboratory.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderReviewJob - Runs hourly and logs pending orders that have been
// open longer than the configured number of days, so accounting can chase
// them up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepository, reviewAfterDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The review job logs and keeps running on repository errors; a failed job
// start stops any already running jobs.
package jobs
