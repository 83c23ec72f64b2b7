package commands

import (
	"context"
	"errors"
	"fmt"

	"hauling/internal/pkg/errs"
)

// ExtendFinishTimeCommandHandler pushes a job's end date forward. The
// scheduled instance, when one exists, must still be Pending or Started;
// extending a finished or canceled run is rejected.
type ExtendFinishTimeCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
}

// NewExtendFinishTimeCommandHandler creates a handler for finish time extensions.
func NewExtendFinishTimeCommandHandler(uowFactory ScheduledJobUoWFactory) ExtendFinishTimeCommandHandler {
	return ExtendFinishTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the extension command.
func (h ExtendFinishTimeCommandHandler) Handle(ctx context.Context, cmd ExtendFinishTimeCommand) error {
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
		return errs.NewForbiddenErrorWithCause("extend finish time",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	scheduledJob, err := uow.ScheduledJobRepository().GetByJob(ctx, cmd.JobID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// never scheduled, the job alone decides
	case err != nil:
		return err
	case !scheduledJob.Status().IsLive():
		return errs.NewIllegalStateTransitionErrorWithCause("extend finish time",
			fmt.Errorf("%s is not a valid schedule status to extend", scheduledJob.Status()))
	}

	if err = aggregate.ExtendFinishTime(cmd.NewEnd()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
