package jobs

import (
	"fmt"
	"log/slog"

	"shipments/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storeLivenessJob  *StoreLivenessJob
	pendingBacklogJob *PendingBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	store ports.StoreHealth,
	shipments ports.ShipmentRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		storeLivenessJob:  NewStoreLivenessJob(store, logger),
		pendingBacklogJob: NewPendingBacklogJob(shipments, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeLivenessJob.Start(); err != nil {
		return fmt.Errorf("failed to start store liveness job: %w", err)
	}

	if err := jm.pendingBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.storeLivenessJob.Stop()
		return fmt.Errorf("failed to start pending backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBacklogJob.Stop()
	jm.storeLivenessJob.Stop()
}
