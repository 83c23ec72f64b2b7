package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// HoldJobCommandHandler toggles a job's on-hold flag.
type HoldJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewHoldJobCommandHandler creates a handler for hold/continue operations.
func NewHoldJobCommandHandler(uowFactory JobUoWFactory) HoldJobCommandHandler {
	return HoldJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold/continue command.
func (h HoldJobCommandHandler) Handle(ctx context.Context, cmd HoldJobCommand) error {
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

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(aggregate.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("hold job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	if err = aggregate.HoldOrContinue(cmd.Hold()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
