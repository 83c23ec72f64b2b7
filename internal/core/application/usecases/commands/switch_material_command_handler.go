package commands

import (
	"context"
	"fmt"

	"hauling/internal/pkg/errs"
)

// SwitchMaterialCommandHandler substitutes the hauled material in place.
type SwitchMaterialCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewSwitchMaterialCommandHandler creates a handler for material substitution.
func NewSwitchMaterialCommandHandler(uowFactory JobUoWFactory) SwitchMaterialCommandHandler {
	return SwitchMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the material substitution command.
func (h SwitchMaterialCommandHandler) Handle(ctx context.Context, cmd SwitchMaterialCommand) error {
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
		return errs.NewForbiddenErrorWithCause("switch material",
			fmt.Errorf("actor %s may not mutate jobs of contractor %s",
				cmd.Actor().ID(), aggregate.ContractorID()))
	}

	if err = aggregate.SubstituteMaterial(cmd.Material()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
