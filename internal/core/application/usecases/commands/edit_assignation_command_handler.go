package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// EditAssignationCommandHandler swaps the driver and truck of an assignation
// that has not clocked in, re-validating the new truck against the category
// the assignation occupies.
type EditAssignationCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewEditAssignationCommandHandler creates a handler for assignation edits.
func NewEditAssignationCommandHandler(uowFactory ScheduleUoWFactory) EditAssignationCommandHandler {
	return EditAssignationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignation edit command.
func (h EditAssignationCommandHandler) Handle(ctx context.Context, cmd EditAssignationCommand) error {
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

	aggregate, err := uow.JobRepository().GetForUpdate(ctx, scheduledJob.JobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(aggregate.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("edit assignation",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	assignation, err := scheduledJob.Assignation(cmd.AssignationID())
	if err != nil {
		return err
	}

	category, err := aggregate.CategoryHolding(cmd.AssignationID())
	if err != nil {
		return err
	}

	tr, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if !category.IsCompatible(tr.Type(), tr.Subtype()) {
		return errs.NewValueIsInvalidErrorWithCause("truckId",
			fmt.Errorf("truck %s does not fit category %s", tr.ID(), category.ID()))
	}

	if err = assignation.Reassign(cmd.DriverID(), cmd.TruckID()); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
