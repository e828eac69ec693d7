package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"shipments/internal/core/ports"
)

// StoreLivenessJob periodically pings the backing store so connectivity
// loss shows up in the logs before it shows up as failing requests.
type StoreLivenessJob struct {
	store  ports.StoreHealth
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStoreLivenessJob creates a job that pings the store every 30 seconds.
func NewStoreLivenessJob(store ports.StoreHealth, logger *slog.Logger) *StoreLivenessJob {
	return &StoreLivenessJob{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "store_liveness_job"),
	}
}

// Start begins the liveness job.
func (j *StoreLivenessJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := j.store.Ping(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Store liveness check failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store liveness job started (running every 30 seconds)")
	return nil
}

// Stop stops the liveness job.
func (j *StoreLivenessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store liveness job stopped")
}
