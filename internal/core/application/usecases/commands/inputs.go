package commands

import (
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"
)

// CategoryInput describes one requirement line of a create or update command.
// A nil ID means a new line; a set ID addresses an existing line of the job.
type CategoryInput struct {
	ID               *kernel.UUID
	TruckTypes       []truck.Type
	TruckSubtypes    []truck.Subtype
	Amount           int
	PayBy            job.PayBy
	Rates            job.Rates
	PreferredTruckID *kernel.UUID
}

// PairInput names one (driver, truck) pair of a scheduling batch.
type PairInput struct {
	DriverID kernel.UUID
	TruckID  kernel.UUID
}

// SwitchInput names one assignation of a switch-request batch together with
// the id reserved for its switch.
type SwitchInput struct {
	SwitchID      kernel.UUID
	AssignationID kernel.UUID
}

// buildCategories materializes category inputs as domain lines. Inputs
// without an ID get a fresh one; all slots start open. Occupancy adoption for
// existing ids happens inside Job.ReplaceCategories.
func buildCategories(inputs []CategoryInput) ([]*job.TruckCategory, error) {
	categories := make([]*job.TruckCategory, 0, len(inputs))
	for _, in := range inputs {
		id := kernel.NewUUID()
		if in.ID != nil {
			id = *in.ID
		}
		category, err := job.NewTruckCategory(id, in.TruckTypes, in.TruckSubtypes,
			in.Amount, in.PayBy, in.Rates, in.PreferredTruckID)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
