package commands

import (
	"context"
	"fmt"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/pkg/errs"
)

// CreateRequestTruckCommandHandler queues a foreman's truck request for the
// contractor that employs them.
type CreateRequestTruckCommandHandler struct {
	uowFactory RequestTruckUoWFactory
}

// NewCreateRequestTruckCommandHandler creates a handler for truck request creation.
func NewCreateRequestTruckCommandHandler(uowFactory RequestTruckUoWFactory) CreateRequestTruckCommandHandler {
	return CreateRequestTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command.
func (h CreateRequestTruckCommandHandler) Handle(ctx context.Context, cmd CreateRequestTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != account.RoleForeman {
		return errs.NewForbiddenErrorWithCause("create request truck",
			fmt.Errorf("actor %s is not a foreman", cmd.Actor().ID()))
	}
	contractorID := cmd.Actor().EffectiveContractor()
	if contractorID == nil {
		return errs.NewValueIsRequiredError("contractorID")
	}

	request, err := requesttruck.NewRequestTruck(
		cmd.RequestID(),
		*contractorID,
		cmd.Actor().ID(),
		cmd.GeneralJobID(),
		cmd.Details(),
		cmd.Lines(),
		cmd.At(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestTruckRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
