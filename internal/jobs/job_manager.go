package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob    *DispatchJob
	zoneRefreshJob *ZoneIndexRefreshJob
}

// NewJobManager creates a new job manager over the given jobs.
func NewJobManager(dispatchJob *DispatchJob, zoneRefreshJob *ZoneIndexRefreshJob) *JobManager {
	return &JobManager{
		dispatchJob:    dispatchJob,
		zoneRefreshJob: zoneRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.zoneRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start zone index refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.zoneRefreshJob.Stop()
	jm.dispatchJob.Stop()
}
