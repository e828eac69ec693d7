package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// pendingBacklogWarnThreshold is the pending-shipment count above which the
// backlog is reported as a warning instead of a debug entry.
const pendingBacklogWarnThreshold = 1000

// PendingBacklogJob reports the number of shipments still waiting for
// pickup. A growing pending backlog usually means an upstream dispatch
// problem and warrants operator attention.
type PendingBacklogJob struct {
	shipments ports.ShipmentRepository
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingBacklogJob creates a job that measures the pending backlog
// every minute.
func NewPendingBacklogJob(shipments ports.ShipmentRepository, logger *slog.Logger) *PendingBacklogJob {
	return &PendingBacklogJob{
		shipments: shipments,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the backlog job.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status := shipment.StatusPending
		count, err := j.shipments.Count(ctx, ports.ShipmentFilter{Status: &status})
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog check failed", "error", err)
			return
		}

		if count > pendingBacklogWarnThreshold {
			j.logger.WarnContext(ctx, "Pending shipment backlog is high", "count", count)
			return
		}
		j.logger.DebugContext(ctx, "Pending shipment backlog measured", "count", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}
