package jobs

import (
	"fmt"
	"log/slog"

	"hauling/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	missedJobsSweepJob *MissedJobsSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	zeroRateHandler commands.ZeroRateMissedJobsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		missedJobsSweepJob: NewMissedJobsSweepJob(zeroRateHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.missedJobsSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start missed jobs sweep: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.missedJobsSweepJob.Stop()
}
