package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// CancelTruckCommandHandler pulls one truck's assignation off a scheduled
// job and reopens its slot. Pulling the last assignation cascades to a
// cancellation of the scheduled job itself.
type CancelTruckCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
}

// NewCancelTruckCommandHandler creates a handler for truck cancellation.
func NewCancelTruckCommandHandler(uowFactory ScheduledJobUoWFactory) CancelTruckCommandHandler {
	return CancelTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck cancellation command.
func (h CancelTruckCommandHandler) Handle(ctx context.Context, cmd CancelTruckCommand) error {
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
		return errs.NewForbiddenErrorWithCause("cancel truck",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	assignation, err := scheduledJob.AssignationByTruck(cmd.TruckID())
	if err != nil {
		return err
	}
	if _, err = scheduledJob.DetachAssignation(assignation.ID()); err != nil {
		return err
	}

	category, err := aggregate.CategoryHolding(assignation.ID())
	if err != nil {
		return err
	}
	if err = category.ReleaseSlot(assignation.ID()); err != nil {
		return err
	}

	if len(scheduledJob.Assignations()) == 0 {
		if err = scheduledJob.Cancel(cmd.At(), false); err != nil {
			return err
		}
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
