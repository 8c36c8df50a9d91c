package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"labflow/internal/core/domain/model/order"
)

// PendingOrderFinder loads the orders still awaiting settlement.
type PendingOrderFinder interface {
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}

// OrderReviewJob flags pending orders that have been open too long.
// Runs hourly and logs every order older than the configured cutoff so
// accounting can follow up with the patient.
type OrderReviewJob struct {
	orders          PendingOrderFinder
	reviewAfterDays int
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewOrderReviewJob creates a job reporting pending orders older than
// reviewAfterDays days.
func NewOrderReviewJob(orders PendingOrderFinder, reviewAfterDays int, logger *slog.Logger) *OrderReviewJob {
	return &OrderReviewJob{
		orders:          orders,
		reviewAfterDays: reviewAfterDays,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "order_review_job"),
	}
}

// Start begins the hourly review.
func (j *OrderReviewJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order review job started (running hourly)")
	return nil
}

// Stop stops the review job.
func (j *OrderReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order review job stopped")
}

func (j *OrderReviewJob) run(ctx context.Context) {
	pending, err := j.orders.GetAllPending(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order review job failed", "error", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -j.reviewAfterDays)
	overdue := 0
	for _, o := range pending {
		if !o.CreatedAt().Before(cutoff) {
			continue
		}
		overdue++
		j.logger.WarnContext(ctx, "Pending order overdue for review",
			"orderId", o.ID().String(),
			"patientId", o.PatientID().String(),
			"balanceDue", o.Totals().BalanceDue().String(),
			"ageDays", int(time.Since(o.CreatedAt()).Hours()/24),
		)
	}

	if overdue > 0 {
		j.logger.InfoContext(ctx, "Order review complete", "pending", len(pending), "overdue", overdue)
	}
}
