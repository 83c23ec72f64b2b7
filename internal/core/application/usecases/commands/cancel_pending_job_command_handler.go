package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/pkg/errs"
)

// CancelPendingJobCommandHandler withdraws a job that has no scheduled
// instance. No billing event is produced: nothing was ever assigned.
type CancelPendingJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelPendingJobCommandHandler creates a handler for pending job withdrawal.
func NewCancelPendingJobCommandHandler(uowFactory JobUoWFactory) CancelPendingJobCommandHandler {
	return CancelPendingJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h CancelPendingJobCommandHandler) Handle(ctx context.Context, cmd CancelPendingJobCommand) error {
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
		return errs.NewForbiddenErrorWithCause("cancel pending job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	if aggregate.Status() != job.Pending {
		return errs.NewIllegalStateTransitionErrorWithCause("cancel pending job",
			fmt.Errorf("%s is not a pending job", aggregate.Status()))
	}

	if err = aggregate.Cancel(cmd.At()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
