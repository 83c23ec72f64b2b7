package jobs

import (
	"context"
	"log/slog"
	"time"

	"hauling/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MissedJobsSweepJob zero-rates scheduled jobs whose start date passed without
// anyone clocking in. Runs on the configured cron schedule, normally once a
// day at midnight.
type MissedJobsSweepJob struct {
	handler  commands.ZeroRateMissedJobsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMissedJobsSweepJob creates the sweep job. The schedule is a six-field
// cron expression with seconds, for example "0 0 0 * * *" for daily at
// midnight.
func NewMissedJobsSweepJob(
	handler commands.ZeroRateMissedJobsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MissedJobsSweepJob {
	return &MissedJobsSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "missed_jobs_sweep_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *MissedJobsSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewZeroRateMissedJobsCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Missed jobs sweep could not build command", "error", err)
			return
		}

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Missed jobs sweep failed", "error", err)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Missed jobs sweep zero-rated scheduled jobs", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Missed jobs sweep started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *MissedJobsSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Missed jobs sweep stopped")
}
