package commands

import (
	"context"
	"errors"
	"fmt"

	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/services"
	"hauling/internal/pkg/errs"
)

// ScheduleJobCommandHandler places an assignation batch into a job's
// category slots. The job row is locked for the whole transaction, so two
// dispatchers racing for the last slot serialize: the second re-reads the
// occupied slot and fails with "slot no longer available".
//
// All mutation happens on in-memory aggregates before a single commit; any
// per-pair failure rolls the whole batch back.
type ScheduleJobCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewScheduleJobCommandHandler creates a handler for batch scheduling.
func NewScheduleJobCommandHandler(uowFactory ScheduleUoWFactory) ScheduleJobCommandHandler {
	return ScheduleJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scheduling command.
func (h ScheduleJobCommandHandler) Handle(ctx context.Context, cmd ScheduleJobCommand) error {
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
		return errs.NewForbiddenErrorWithCause("schedule job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	pairs, err := h.resolvePairs(ctx, uow, cmd.Pairs())
	if err != nil {
		return err
	}

	scheduledJobRepo := uow.ScheduledJobRepository()
	scheduledJob, created, err := h.liveScheduledJob(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if _, err = services.NewCategoryScheduler().Schedule(aggregate, scheduledJob, pairs); err != nil {
		return err
	}

	if created {
		err = scheduledJobRepo.Add(ctx, scheduledJob)
	} else {
		err = scheduledJobRepo.Update(ctx, scheduledJob)
	}
	if err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolvePairs loads the truck directory entries for the batch.
func (h ScheduleJobCommandHandler) resolvePairs(
	ctx context.Context,
	uow ScheduleUoW,
	inputs []PairInput,
) ([]services.Pair, error) {
	truckRepo := uow.TruckRepository()
	pairs := make([]services.Pair, 0, len(inputs))
	for _, in := range inputs {
		tr, err := truckRepo.Get(ctx, in.TruckID)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, services.Pair{DriverID: in.DriverID, Truck: tr})
	}
	return pairs, nil
}

// liveScheduledJob returns the job's live scheduled instance, creating a
// fresh one under the command's id when none exists.
func (h ScheduleJobCommandHandler) liveScheduledJob(
	ctx context.Context,
	uow ScheduleUoW,
	cmd ScheduleJobCommand,
) (*schedule.ScheduledJob, bool, error) {
	existing, err := uow.ScheduledJobRepository().GetByJob(ctx, cmd.JobID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, newErr := schedule.NewScheduledJob(cmd.ScheduledJobID(), cmd.JobID())
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
