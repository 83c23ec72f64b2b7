package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// CloseRequestTruckCommandHandler withdraws a pending truck request. The
// raising foreman and anyone scoped to the addressed contractor may close it.
type CloseRequestTruckCommandHandler struct {
	uowFactory RequestTruckUoWFactory
}

// NewCloseRequestTruckCommandHandler creates a handler for truck request closing.
func NewCloseRequestTruckCommandHandler(uowFactory RequestTruckUoWFactory) CloseRequestTruckCommandHandler {
	return CloseRequestTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close command.
func (h CloseRequestTruckCommandHandler) Handle(ctx context.Context, cmd CloseRequestTruckCommand) error {
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

	requestRepo := uow.RequestTruckRepository()
	request, err := requestRepo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if !cmd.Actor().CanMutateContractorJob(request.ContractorID()) {
		return errs.NewForbiddenErrorWithCause("close request truck",
			fmt.Errorf("actor %s may not mutate requests of contractor %s",
				cmd.Actor().ID(), request.ContractorID()))
	}

	if err = request.Close(); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
