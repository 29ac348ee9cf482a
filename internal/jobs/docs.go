// Package jobs provides scheduled background tasks for the fulfillment
// system, implemented as cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ViewRefreshJob - Runs every minute to rebuild the materialized
// delivery-order views from the live fulfillment sets.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshViewsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
