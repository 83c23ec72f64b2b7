package commands

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/ports"
)

// ZeroRateMissedJobsCommandHandler zero-rates every scheduled job that is
// still pending past its job's start time. Billing is told about each swept
// job after the commit.
type ZeroRateMissedJobsCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
	billing    ports.BillingService
}

// NewZeroRateMissedJobsCommandHandler creates a handler for the daily sweep.
func NewZeroRateMissedJobsCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	billing ports.BillingService,
) ZeroRateMissedJobsCommandHandler {
	return ZeroRateMissedJobsCommandHandler{
		uowFactory: uowFactory,
		billing:    billing,
	}
}

// Handle processes the sweep and returns how many scheduled jobs were
// zero-rated.
func (h ZeroRateMissedJobsCommandHandler) Handle(ctx context.Context, cmd ZeroRateMissedJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduledJobRepo := uow.ScheduledJobRepository()
	missed, err := scheduledJobRepo.GetAllMissed(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	swept := make([]kernel.UUID, 0, len(missed))
	for _, scheduledJob := range missed {
		if err = scheduledJob.ZeroRate(); err != nil {
			return 0, err
		}
		if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
			return 0, err
		}
		swept = append(swept, scheduledJob.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, id := range swept {
		_ = h.billing.ReportZeroRated(ctx, id)
	}

	return len(swept), nil
}
