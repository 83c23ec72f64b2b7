package commands

import (
	"context"
	"errors"
	"time"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/pkg/errs"
)

// ErrActorIsNotContractorScoped is returned when a caller without an
// effective contractor attempts a contractor-side operation.
var ErrActorIsNotContractorScoped = errors.New("actor is not contractor scoped")

// CreateJobCommandHandler handles the business logic for posting a new job.
// Reserves the contractor's next order number, materializes the requirement
// lines, and marks the consumed truck request fulfilled in the same
// transaction so a request can never produce two jobs.
type CreateJobCommandHandler struct {
	uowFactory CreateJobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(uowFactory CreateJobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	contractorID := cmd.Actor().EffectiveContractor()
	if contractorID == nil {
		return errs.NewForbiddenErrorWithCause("create job", ErrActorIsNotContractorScoped)
	}

	categories, err := buildCategories(cmd.Categories())
	if err != nil {
		return err
	}
	if err = job.ValidateCategoriesUnique(categories); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	orderNumber, err := jobRepo.NextOrderNumber(ctx, *contractorID)
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(cmd.JobID(), *contractorID, orderNumber,
		cmd.Details(), categories, cmd.GeneralJobID())
	if err != nil {
		return err
	}
	aggregate.SetOnSite(cmd.OnSite())

	if cmd.RequestTruckID() != nil {
		requestRepo := uow.RequestTruckRepository()
		request, getErr := requestRepo.GetForUpdate(ctx, *cmd.RequestTruckID())
		if getErr != nil {
			return getErr
		}
		if markErr := request.MarkFulfilled(time.Now().UTC()); markErr != nil {
			return markErr
		}
		if updErr := requestRepo.Update(ctx, request); updErr != nil {
			return updErr
		}
	}

	if err = jobRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
