package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/ports"
	"hauling/internal/pkg/errs"
)

// ClockoutAssignationsCommandHandler force-completes the named assignations.
// When the last one closes, the scheduled job and its job transition to Done.
type ClockoutAssignationsCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
	billing    ports.BillingService
}

// NewClockoutAssignationsCommandHandler creates a handler for supervisory clock-outs.
func NewClockoutAssignationsCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	billing ports.BillingService,
) ClockoutAssignationsCommandHandler {
	return ClockoutAssignationsCommandHandler{
		uowFactory: uowFactory,
		billing:    billing,
	}
}

// Handle processes the supervisory clock-out command.
func (h ClockoutAssignationsCommandHandler) Handle(ctx context.Context, cmd ClockoutAssignationsCommand) error {
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
		return errs.NewForbiddenErrorWithCause("clockout assignations",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	for _, assignationID := range cmd.AssignationIDs() {
		if err = scheduledJob.FinishAssignation(assignationID, cmd.At()); err != nil {
			return err
		}
	}

	if scheduledJob.Status() == schedule.Done {
		if err = aggregate.Finish(cmd.At()); err != nil {
			return err
		}
		if err = jobRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if scheduledJob.Status() == schedule.Done {
		_ = h.billing.ReportFinished(ctx, scheduledJob.ID())
	}

	return nil
}
