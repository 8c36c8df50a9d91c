package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderReviewJob *OrderReviewJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orders PendingOrderFinder, reviewAfterDays int, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderReviewJob: NewOrderReviewJob(orders, reviewAfterDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderReviewJob.Start(); err != nil {
		return fmt.Errorf("failed to start order review job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderReviewJob.Stop()
}
