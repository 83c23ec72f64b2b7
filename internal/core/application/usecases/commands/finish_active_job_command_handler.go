package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/ports"
	"hauling/internal/pkg/errs"
)

// FinishActiveJobCommandHandler force-finishes a started scheduled job and
// completes the job behind it. Dropped never-started assignations give their
// slots back before the job completes.
type FinishActiveJobCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
	billing    ports.BillingService
}

// NewFinishActiveJobCommandHandler creates a handler for force-finish operations.
func NewFinishActiveJobCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	billing ports.BillingService,
) FinishActiveJobCommandHandler {
	return FinishActiveJobCommandHandler{
		uowFactory: uowFactory,
		billing:    billing,
	}
}

// Handle processes the force-finish command.
func (h FinishActiveJobCommandHandler) Handle(ctx context.Context, cmd FinishActiveJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduledJobRepo := uow.ScheduledJobRepository()
	scheduledJob, err := scheduledJobRepo.GetForUpdate(ctx, cmd.ScheduledJobID())
	if err != nil {
		return err
	}

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.GetForUpdate(ctx, scheduledJob.JobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(aggregate.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("finish active job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	dropped, err := scheduledJob.ForceFinish(cmd.At())
	if err != nil {
		return err
	}
	for _, a := range dropped {
		category, holdErr := aggregate.CategoryHolding(a.ID())
		if holdErr != nil {
			return holdErr
		}
		if err = category.ReleaseSlot(a.ID()); err != nil {
			return err
		}
	}

	if err = aggregate.Finish(cmd.At()); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.billing.ReportFinished(ctx, scheduledJob.ID())

	return nil
}
