package services

import (
	"errors"
	"fmt"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"
)

// ErrNoMatchingCategory is returned when a (driver, truck) pair fits none of
// the job's requirement lines with an open slot.
var ErrNoMatchingCategory = errors.New("no matching category")

// Pair is one (driver, truck) entry of a scheduling batch.
type Pair struct {
	DriverID kernel.UUID
	Truck    truck.Truck
}

// CategoryScheduler is a domain service that places a batch of (driver, truck)
// pairs into a job's category slots and materializes the assignations.
//
// Key responsibilities:
//   - Validating batch uniqueness (no driver or truck twice in one batch)
//   - Matching each pair to a requirement line, preferring exact
//     type+subtype matches over broader compatible lines
//   - Failing the whole batch when any pair cannot be placed
//
// Business rules:
//   - A preferred-truck line wins for its truck before any signature matching
//   - Exact matches are tried before compatible ones so a broad line stays
//     open for pairs that have nowhere else to go
//   - Slot occupation and assignation creation happen together; the caller
//     commits or discards both
type CategoryScheduler struct{}

// NewCategoryScheduler creates a new CategoryScheduler instance.
func NewCategoryScheduler() CategoryScheduler {
	return CategoryScheduler{}
}

// Schedule places every pair of the batch into a slot of the given job and
// attaches the resulting assignations to the scheduled job. On any error the
// caller must discard both aggregates: partially occupied slots are not
// rolled back here.
func (s CategoryScheduler) Schedule(
	j *job.Job,
	scheduledJob *schedule.ScheduledJob,
	pairs []Pair,
) ([]*schedule.Assignation, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if err := scheduledJob.Validate(); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errs.NewValueIsRequiredError("pairs")
	}
	if err := s.validateBatchUnique(pairs, scheduledJob); err != nil {
		return nil, err
	}

	assignations := make([]*schedule.Assignation, 0, len(pairs))
	for _, pair := range pairs {
		assignation, err := s.place(j, pair)
		if err != nil {
			return nil, err
		}
		if err = scheduledJob.AddAssignation(assignation); err != nil {
			return nil, err
		}
		assignations = append(assignations, assignation)
	}

	if err := j.MarkScheduled(); err != nil {
		return nil, err
	}

	return assignations, nil
}

// Match selects the requirement line an incoming truck should fill, using
// the same preference order as batch scheduling. Returns a ConflictError
// when the job has no line with an open slot for the truck.
func (s CategoryScheduler) Match(j *job.Job, tr truck.Truck) (*job.TruckCategory, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	category := s.findCategory(j, tr)
	if category == nil {
		return nil, errs.NewConflictErrorWithCause("slot no longer available",
			fmt.Errorf("%w for truck %s", ErrNoMatchingCategory, tr.ID()))
	}
	return category, nil
}

// place matches one pair to a requirement line and occupies a slot.
func (s CategoryScheduler) place(j *job.Job, pair Pair) (*schedule.Assignation, error) {
	if err := pair.DriverID.Validate(); err != nil {
		return nil, err
	}
	if err := pair.Truck.Validate(); err != nil {
		return nil, err
	}

	category := s.findCategory(j, pair.Truck)
	if category == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("pair",
			fmt.Errorf("%w for driver %s and truck %s",
				ErrNoMatchingCategory, pair.DriverID, pair.Truck.ID()))
	}

	categoryID := category.ID()
	assignation, err := schedule.NewAssignation(kernel.NewUUID(), &categoryID, pair.DriverID, pair.Truck.ID())
	if err != nil {
		return nil, err
	}
	if err = category.OccupySlot(assignation.ID()); err != nil {
		return nil, err
	}
	return assignation, nil
}

// findCategory selects the requirement line for a truck: preferred-truck lines
// first, then exact type+subtype matches, then broader compatible lines. Only
// lines with an open slot are considered.
func (s CategoryScheduler) findCategory(j *job.Job, tr truck.Truck) *job.TruckCategory {
	var exact, compatible *job.TruckCategory

	for _, c := range j.Categories() {
		if c.OpenSlotCount() == 0 {
			continue
		}
		if !c.IsCompatible(tr.Type(), tr.Subtype()) {
			continue
		}
		if c.PreferredTruckID() != nil && c.PreferredTruckID().IsEqual(tr.ID()) {
			return c
		}
		if c.IsExactMatch(tr.Type(), tr.Subtype()) {
			if exact == nil {
				exact = c
			}
			continue
		}
		if compatible == nil {
			compatible = c
		}
	}

	if exact != nil {
		return exact
	}
	return compatible
}

// validateBatchUnique rejects batches naming the same driver or truck twice,
// including pairs already attached to the scheduled job.
func (s CategoryScheduler) validateBatchUnique(pairs []Pair, scheduledJob *schedule.ScheduledJob) error {
	drivers := make(map[kernel.UUID]struct{}, len(pairs))
	trucks := make(map[kernel.UUID]struct{}, len(pairs))

	for _, existing := range scheduledJob.Assignations() {
		if existing.IsFinished() {
			continue
		}
		drivers[existing.DriverID()] = struct{}{}
		trucks[existing.TruckID()] = struct{}{}
	}

	for _, pair := range pairs {
		if _, ok := drivers[pair.DriverID]; ok {
			return errs.NewConflictErrorWithCause("batch",
				fmt.Errorf("driver %s appears twice", pair.DriverID))
		}
		if _, ok := trucks[pair.Truck.ID()]; ok {
			return errs.NewConflictErrorWithCause("batch",
				fmt.Errorf("truck %s appears twice", pair.Truck.ID()))
		}
		drivers[pair.DriverID] = struct{}{}
		trucks[pair.Truck.ID()] = struct{}{}
	}
	return nil
}
