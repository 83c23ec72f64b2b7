package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// ReviewDisputeCommandHandler records an admin's decision on an open dispute.
// The scheduled job's status stays as it is; billing interprets the outcome.
type ReviewDisputeCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
}

// NewReviewDisputeCommandHandler creates a handler for dispute review.
func NewReviewDisputeCommandHandler(uowFactory ScheduledJobUoWFactory) ReviewDisputeCommandHandler {
	return ReviewDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h ReviewDisputeCommandHandler) Handle(ctx context.Context, cmd ReviewDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return errs.NewForbiddenErrorWithCause("review dispute",
			fmt.Errorf("actor %s is not an admin", cmd.Actor().ID()))
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

	if err = scheduledJob.ResolveDispute(cmd.Upheld()); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
