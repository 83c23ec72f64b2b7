package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
)

// DuplicateJobCommandHandler reposts an existing job order for a new date
// window. Requirement lines are copied with fresh identifiers and open
// slots; occupancy never carries over.
type DuplicateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewDuplicateJobCommandHandler creates a handler for job duplication.
func NewDuplicateJobCommandHandler(uowFactory JobUoWFactory) DuplicateJobCommandHandler {
	return DuplicateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job duplication command.
func (h DuplicateJobCommandHandler) Handle(ctx context.Context, cmd DuplicateJobCommand) error {
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
	source, err := jobRepo.Get(ctx, cmd.SourceJobID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(source.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("duplicate job",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), source.ContractorID()))
	}

	sourceDetails := source.Details()
	details, err := job.NewDetails(sourceDetails.Name(), cmd.StartDate(), cmd.EndDate(),
		sourceDetails.Material(), sourceDetails.Directions(), sourceDetails.PaymentDue(),
		sourceDetails.LoadSite(), sourceDetails.DumpSite())
	if err != nil {
		return err
	}

	categories := make([]*job.TruckCategory, 0, len(source.Categories()))
	for _, c := range source.Categories() {
		copied, newErr := job.NewTruckCategory(kernel.NewUUID(), c.TruckTypes(),
			c.TruckSubtypes(), c.Amount(), c.PayBy(), c.Rates(), c.PreferredTruckID())
		if newErr != nil {
			return newErr
		}
		categories = append(categories, copied)
	}

	orderNumber, err := jobRepo.NextOrderNumber(ctx, source.ContractorID())
	if err != nil {
		return err
	}

	duplicate, err := job.NewJob(cmd.NewJobID(), source.ContractorID(), orderNumber,
		details, categories, source.GeneralJobID())
	if err != nil {
		return err
	}
	duplicate.SetOnSite(source.OnSite())

	if err = jobRepo.Add(ctx, duplicate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
