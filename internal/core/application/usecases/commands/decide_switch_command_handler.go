package commands

import (
	"context"
	"errors"
	"fmt"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/services"
	"hauling/internal/core/ports"
	"hauling/internal/pkg/errs"
)

// DecideSwitchCommandHandler resolves an outstanding shift switch.
//
// The accept path verifies the driver's reported position against the
// destination site's geofence when one was sent, re-validates the destination
// slot under the destination job's row lock, moves the assignation between
// scheduled jobs, frees the origin slot and finishes the switch, all in one
// transaction. When the slot was consumed in the meantime the switch is
// denied instead and the caller sees the conflict. The deny path leaves the
// original assignation untouched.
type DecideSwitchCommandHandler struct {
	uowFactory   SwitchUoWFactory
	notification ports.NotificationService
	geolocation  ports.GeolocationService
}

// NewDecideSwitchCommandHandler creates a handler for switch decisions.
func NewDecideSwitchCommandHandler(
	uowFactory SwitchUoWFactory,
	notification ports.NotificationService,
	geolocation ports.GeolocationService,
) DecideSwitchCommandHandler {
	return DecideSwitchCommandHandler{
		uowFactory:   uowFactory,
		notification: notification,
		geolocation:  geolocation,
	}
}

// Handle processes the switch decision command.
func (h DecideSwitchCommandHandler) Handle(ctx context.Context, cmd DecideSwitchCommand) error {
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

	switchRepo := uow.SwitchJobRepository()
	sw, err := switchRepo.GetForUpdate(ctx, cmd.SwitchID())
	if err != nil {
		return err
	}
	if !sw.IsOutstanding() {
		return errs.NewConflictErrorWithCause("switch already decided",
			fmt.Errorf("switch %s is %s", sw.ID(), sw.Status()))
	}

	jobRepo := uow.JobRepository()
	destination, err := jobRepo.GetForUpdate(ctx, *sw.FinalJobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(destination.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("decide switch",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), destination.ContractorID()))
	}

	scheduledJobRepo := uow.ScheduledJobRepository()
	origin, err := scheduledJobRepo.GetForUpdate(ctx, sw.InitialScheduledJobID())
	if err != nil {
		return err
	}
	assignation, err := origin.Assignation(sw.AssignationID())
	if err != nil {
		return err
	}
	driverID := assignation.DriverID()

	if !cmd.Accept() {
		if err = sw.Deny(); err != nil {
			return err
		}
		if err = switchRepo.Update(ctx, sw); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		h.notification.NotifySwitchDecided(ctx, sw.ID(), driverID, false)
		return nil
	}

	if cmd.Position() != nil {
		inside, geoErr := h.geolocation.IsInsideArea(ctx,
			destination.Details().LoadSite(), *cmd.Position())
		if geoErr != nil {
			return geoErr
		}
		if !inside {
			return errs.NewConflictErrorWithCause("driver is not at the destination site",
				fmt.Errorf("reported position is outside the load site geofence of job %s",
					destination.ID()))
		}
	}

	truckRepo := uow.TruckRepository()
	tr, err := truckRepo.Get(ctx, assignation.TruckID())
	if err != nil {
		return err
	}

	category, err := services.NewCategoryScheduler().Match(destination, tr)
	if err != nil {
		var conflict *errs.ConflictError
		if !errors.As(err, &conflict) {
			return err
		}
		// the slot the driver asked for is gone: record the denial and
		// surface the conflict
		if denyErr := sw.Deny(); denyErr != nil {
			return denyErr
		}
		if updateErr := switchRepo.Update(ctx, sw); updateErr != nil {
			return updateErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		h.notification.NotifySwitchDecided(ctx, sw.ID(), driverID, false)
		return err
	}

	originJob, err := jobRepo.GetForUpdate(ctx, origin.JobID())
	if err != nil {
		return err
	}
	originCategory, err := originJob.CategoryHolding(assignation.ID())
	if err != nil {
		return err
	}

	moved, err := origin.DetachAssignation(sw.AssignationID())
	if err != nil {
		return err
	}
	if err = originCategory.ReleaseSlot(moved.ID()); err != nil {
		return err
	}
	if err = category.OccupySlot(moved.ID()); err != nil {
		return err
	}
	categoryID := category.ID()
	if err = moved.RebindCategory(&categoryID); err != nil {
		return err
	}

	destScheduled, created, err := h.destinationScheduledJob(ctx, uow, cmd, destination.ID())
	if err != nil {
		return err
	}
	if err = destScheduled.AdoptAssignation(moved); err != nil {
		return err
	}
	if err = destination.MarkScheduled(); err != nil {
		return err
	}

	if err = sw.Accept(destScheduled.ID()); err != nil {
		return err
	}
	if err = sw.Finish(); err != nil {
		return err
	}

	if err = scheduledJobRepo.Update(ctx, origin); err != nil {
		return err
	}
	if created {
		err = scheduledJobRepo.Add(ctx, destScheduled)
	} else {
		err = scheduledJobRepo.Update(ctx, destScheduled)
	}
	if err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, originJob); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, destination); err != nil {
		return err
	}
	if err = switchRepo.Update(ctx, sw); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notification.NotifySwitchDecided(ctx, sw.ID(), driverID, true)

	return nil
}

// destinationScheduledJob returns the destination job's live scheduled
// instance, creating one under the command's reserved id when none exists.
func (h DecideSwitchCommandHandler) destinationScheduledJob(
	ctx context.Context,
	uow SwitchUoW,
	cmd DecideSwitchCommand,
	jobID kernel.UUID,
) (*schedule.ScheduledJob, bool, error) {
	existing, err := uow.ScheduledJobRepository().GetByJob(ctx, jobID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, newErr := schedule.NewScheduledJob(cmd.ScheduledJobID(), jobID)
		if newErr != nil {
			return nil, false, newErr
		}
		return created, true, nil
	case err != nil:
		return nil, false, err
	default:
		return existing, false, nil
	}
}
