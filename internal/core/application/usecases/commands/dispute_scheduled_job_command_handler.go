package commands

import (
	"context"

	"hauling/internal/core/ports"
)

// DisputeScheduledJobCommandHandler flags a scheduled job as disputed and
// alerts the admins after the commit. Either side of the job may raise a
// dispute, so there is no contractor ownership check here.
type DisputeScheduledJobCommandHandler struct {
	uowFactory   ScheduledJobUoWFactory
	notification ports.NotificationService
}

// NewDisputeScheduledJobCommandHandler creates a handler for dispute flagging.
func NewDisputeScheduledJobCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	notification ports.NotificationService,
) DisputeScheduledJobCommandHandler {
	return DisputeScheduledJobCommandHandler{
		uowFactory:   uowFactory,
		notification: notification,
	}
}

// Handle processes the dispute command.
func (h DisputeScheduledJobCommandHandler) Handle(ctx context.Context, cmd DisputeScheduledJobCommand) error {
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

	if err = scheduledJob.Dispute(cmd.Message()); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notification.NotifyDisputeRaised(ctx, scheduledJob.ID(), cmd.Message())

	return nil
}
