package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/ports"
	"hauling/internal/pkg/errs"
)

// CancelScheduledJobCommandHandler cancels a live scheduled job together
// with the job behind it, reopening every slot. Affected drivers are
// notified and billing is informed who canceled, both after the commit.
type CancelScheduledJobCommandHandler struct {
	uowFactory   ScheduledJobUoWFactory
	billing      ports.BillingService
	notification ports.NotificationService
}

// NewCancelScheduledJobCommandHandler creates a handler for scheduled job cancellation.
func NewCancelScheduledJobCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	billing ports.BillingService,
	notification ports.NotificationService,
) CancelScheduledJobCommandHandler {
	return CancelScheduledJobCommandHandler{
		uowFactory:   uowFactory,
		billing:      billing,
		notification: notification,
	}
}

// Handle processes the cancellation command.
func (h CancelScheduledJobCommandHandler) Handle(ctx context.Context, cmd CancelScheduledJobCommand) error {
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

	// owners cancel through their own surface, everyone else must own the job
	if !cmd.ByOwner() && !cmd.Actor().CanMutateContractorJob(aggregate.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("cancel scheduled job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	if err = scheduledJob.Cancel(cmd.At(), cmd.ByOwner()); err != nil {
		return err
	}
	if err = aggregate.Cancel(cmd.At()); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	driverIDs := make([]kernel.UUID, 0, len(scheduledJob.Assignations()))
	for _, a := range scheduledJob.Assignations() {
		driverIDs = append(driverIDs, a.DriverID())
	}
	h.notification.NotifyJobCanceled(ctx, aggregate.ID(), driverIDs)
	_ = h.billing.ReportCanceled(ctx, scheduledJob.ID(), cmd.ByOwner())

	return nil
}
