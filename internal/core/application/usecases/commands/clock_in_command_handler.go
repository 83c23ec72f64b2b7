package commands

import (
	"context"

	"hauling/internal/core/ports"
)

// ClockInCommandHandler records a driver's shift start. The geofence check is
// advisory: a clock-in outside the load site area is recorded with
// insideArea=false, it is never rejected, so drivers are not blocked by GPS
// noise. Billing reads the flag downstream.
type ClockInCommandHandler struct {
	uowFactory  ScheduledJobUoWFactory
	geolocation ports.GeolocationService
}

// NewClockInCommandHandler creates a handler for clock-in events.
func NewClockInCommandHandler(
	uowFactory ScheduledJobUoWFactory,
	geolocation ports.GeolocationService,
) ClockInCommandHandler {
	return ClockInCommandHandler{
		uowFactory:  uowFactory,
		geolocation: geolocation,
	}
}

// Handle processes the clock-in command.
func (h ClockInCommandHandler) Handle(ctx context.Context, cmd ClockInCommand) error {
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

	aggregate, err := uow.JobRepository().Get(ctx, scheduledJob.JobID())
	if err != nil {
		return err
	}

	insideArea := false
	if cmd.Position() != nil {
		insideArea, err = h.geolocation.IsInsideArea(ctx, aggregate.Details().LoadSite(), *cmd.Position())
		if err != nil {
			return err
		}
	}

	if err = scheduledJob.ClockIn(cmd.AssignationID(), cmd.At(), insideArea); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, scheduledJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
