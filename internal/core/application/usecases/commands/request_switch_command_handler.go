package commands

import (
	"context"
	"errors"
	"fmt"

	"hauling/internal/core/domain/model/switchjob"
	"hauling/internal/core/ports"
	"hauling/internal/pkg/errs"
)

// RequestSwitchCommandHandler publishes a batch of shift-switch requests in
// one transaction. An assignation carries at most one outstanding request at
// a time, and one assignation that cannot be switched aborts the whole
// batch. The destination contractor is notified per switch after the commit.
type RequestSwitchCommandHandler struct {
	uowFactory   SwitchUoWFactory
	notification ports.NotificationService
}

// NewRequestSwitchCommandHandler creates a handler for switch requests.
func NewRequestSwitchCommandHandler(
	uowFactory SwitchUoWFactory,
	notification ports.NotificationService,
) RequestSwitchCommandHandler {
	return RequestSwitchCommandHandler{
		uowFactory:   uowFactory,
		notification: notification,
	}
}

// Handle processes the switch request command.
func (h RequestSwitchCommandHandler) Handle(ctx context.Context, cmd RequestSwitchCommand) error {
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
	destination, err := jobRepo.Get(ctx, cmd.FinalJobID())
	if err != nil {
		return err
	}
	if destination.Status().IsTerminal() {
		return errs.NewConflictErrorWithCause("request switch",
			fmt.Errorf("destination job %s is %s", destination.ID(), destination.Status()))
	}

	scheduledJobRepo := uow.ScheduledJobRepository()
	switchRepo := uow.SwitchJobRepository()

	created := make([]*switchjob.SwitchJob, 0, len(cmd.Switches()))
	for _, in := range cmd.Switches() {
		origin, originErr := scheduledJobRepo.GetByAssignation(ctx, in.AssignationID)
		if originErr != nil {
			return originErr
		}

		assignation, assignErr := origin.Assignation(in.AssignationID)
		if assignErr != nil {
			return assignErr
		}
		if assignation.IsFinished() {
			return errs.NewIllegalStateTransitionErrorWithCause("request switch",
				fmt.Errorf("assignation %s is already finished", assignation.ID()))
		}

		outstanding, outErr := switchRepo.GetOutstandingByAssignation(ctx, in.AssignationID)
		if outErr != nil && !errors.Is(outErr, errs.ErrObjectNotFound) {
			return outErr
		}
		if outstanding != nil {
			return errs.NewConflictErrorWithCause("switch already requested",
				fmt.Errorf("assignation %s has outstanding switch %s",
					in.AssignationID, outstanding.ID()))
		}

		sw, swErr := switchjob.NewSwitchJob(in.SwitchID, in.AssignationID, origin.ID())
		if swErr != nil {
			return swErr
		}
		if swErr = sw.Request(cmd.FinalJobID()); swErr != nil {
			return swErr
		}

		if swErr = switchRepo.Add(ctx, sw); swErr != nil {
			return swErr
		}
		created = append(created, sw)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, sw := range created {
		h.notification.NotifySwitchRequested(ctx, sw.ID(), destination.ContractorID())
	}

	return nil
}
