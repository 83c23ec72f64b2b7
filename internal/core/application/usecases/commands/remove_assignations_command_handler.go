package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// RemoveAssignationsCommandHandler detaches not-yet-started assignations and
// reopens their slots. Started assignations fail the whole request; nothing
// is removed partially.
type RemoveAssignationsCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
}

// NewRemoveAssignationsCommandHandler creates a handler for assignation removal.
func NewRemoveAssignationsCommandHandler(uowFactory ScheduledJobUoWFactory) RemoveAssignationsCommandHandler {
	return RemoveAssignationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveAssignationsCommandHandler) Handle(ctx context.Context, cmd RemoveAssignationsCommand) error {
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
		return errs.NewForbiddenErrorWithCause("remove assignations",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	for _, assignationID := range cmd.AssignationIDs() {
		if _, err = scheduledJob.RemoveAssignation(assignationID); err != nil {
			return err
		}
		category, holdErr := aggregate.CategoryHolding(assignationID)
		if holdErr != nil {
			return holdErr
		}
		if err = category.ReleaseSlot(assignationID); err != nil {
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
