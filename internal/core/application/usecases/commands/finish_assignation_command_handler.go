package commands

import (
	"context"

	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/ports"
)

// FinishAssignationCommandHandler records a driver's shift end. When the last
// assignation finishes, the scheduled job and its job transition to Done and
// the completion is reported to billing after the commit.
type FinishAssignationCommandHandler struct {
	uowFactory ScheduledJobUoWFactory
	billing    ports.BillingService
}

// NewFinishAssignationCommandHandler creates a handler for shift-end events.
func NewFinishAssignationCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	billing ports.BillingService,
) FinishAssignationCommandHandler {
	return FinishAssignationCommandHandler{
		uowFactory: uowFactory,
		billing:    billing,
	}
}

// Handle processes the shift-end command.
func (h FinishAssignationCommandHandler) Handle(ctx context.Context, cmd FinishAssignationCommand) error {
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
	located, err := scheduledJobRepo.GetByAssignation(ctx, cmd.AssignationID())
	if err != nil {
		return err
	}
	scheduledJob, err := scheduledJobRepo.GetForUpdate(ctx, located.ID())
	if err != nil {
		return err
	}

	if err = scheduledJob.FinishAssignation(cmd.AssignationID(), cmd.At()); err != nil {
		return err
	}

	if scheduledJob.Status() == schedule.Done {
		jobRepo := uow.JobRepository()
		aggregate, getErr := jobRepo.GetForUpdate(ctx, scheduledJob.JobID())
		if getErr != nil {
			return getErr
		}
		if finishErr := aggregate.Finish(cmd.At()); finishErr != nil {
			return finishErr
		}
		if updErr := jobRepo.Update(ctx, aggregate); updErr != nil {
			return updErr
		}
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if scheduledJob.Status() == schedule.Done {
		// post-commit, best-effort; billing reconciles from storage anyway
		_ = h.billing.ReportFinished(ctx, scheduledJob.ID())
	}

	return nil
}
