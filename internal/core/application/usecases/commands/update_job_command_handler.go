package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// UpdateJobCommandHandler handles job edits. The job row is read under a
// lock so concurrent schedulers cannot occupy a slot between the occupancy
// check and the write.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobCommandHandler creates a handler for job edit operations.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job edit command.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	incoming, err := buildCategories(cmd.Categories())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(aggregate.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("update job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	if err = aggregate.UpdateDetails(cmd.Details()); err != nil {
		return err
	}
	if err = aggregate.ReplaceCategories(incoming, cmd.Force()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
