package job

import (
	"errors"
	"fmt"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	// ErrJobIsNotConstructed is returned when using an improperly initialized Job.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")
	// ErrDetailsAreNotConstructed is returned when using improperly initialized Details.
	ErrDetailsAreNotConstructed = errs.NewValueIsRequiredError(
		"details must be created via NewDetails constructor")
	// ErrCategoryNotFound is returned when a category id is not part of the job.
	ErrCategoryNotFound = errors.New("truck category not found on job")
)

// Details is the descriptive part of a job order: what is hauled, where, when
// and on what payment terms. It is an immutable value object shared by create,
// update and duplicate operations.
type Details struct { //nolint:recvcheck //using for validation
	name       *string
	startDate  time.Time
	endDate    time.Time
	material   string
	directions string
	paymentDue time.Time
	loadSite   kernel.Site
	dumpSite   kernel.Site
	guard      guard.ConstructorGuard
}

// NewDetails creates validated job details. The end date must not precede the
// start date; material and both sites are required.
func NewDetails(
	name *string,
	startDate, endDate time.Time,
	material, directions string,
	paymentDue time.Time,
	loadSite, dumpSite kernel.Site,
) (Details, error) {
	if startDate.IsZero() {
		return Details{}, errs.NewValueIsRequiredError("startDate")
	}
	if endDate.IsZero() {
		return Details{}, errs.NewValueIsRequiredError("endDate")
	}
	if endDate.Before(startDate) {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("end date %s precedes start date %s", endDate, startDate))
	}
	if material == "" {
		return Details{}, errs.NewValueIsRequiredError("material")
	}
	if err := loadSite.Validate(); err != nil {
		return Details{}, err
	}
	if err := dumpSite.Validate(); err != nil {
		return Details{}, err
	}

	return Details{
		name:       name,
		startDate:  startDate,
		endDate:    endDate,
		material:   material,
		directions: directions,
		paymentDue: paymentDue,
		loadSite:   loadSite,
		dumpSite:   dumpSite,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Details were built through the constructor.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// Name returns the optional display name.
func (d Details) Name() *string { return d.name }

// StartDate returns when hauling starts.
func (d Details) StartDate() time.Time { return d.startDate }

// EndDate returns when hauling is expected to finish.
func (d Details) EndDate() time.Time { return d.endDate }

// Material returns the hauled material.
func (d Details) Material() string { return d.material }

// Directions returns free-form driver directions.
func (d Details) Directions() string { return d.directions }

// PaymentDue returns when payment is due.
func (d Details) PaymentDue() time.Time { return d.paymentDue }

// LoadSite returns where material is picked up.
func (d Details) LoadSite() kernel.Site { return d.loadSite }

// DumpSite returns where material is dropped off.
func (d Details) DumpSite() kernel.Site { return d.dumpSite }

// withMaterial returns a copy of the details with the material substituted.
func (d Details) withMaterial(material string) (Details, error) {
	return NewDetails(d.name, d.startDate, d.endDate, material, d.directions,
		d.paymentDue, d.loadSite, d.dumpSite)
}

// withEndDate returns a copy of the details with the end date extended.
func (d Details) withEndDate(endDate time.Time) (Details, error) {
	return NewDetails(d.name, d.startDate, endDate, d.material, d.directions,
		d.paymentDue, d.loadSite, d.dumpSite)
}

// Job is the aggregate root for a posted work order. It owns the requirement
// lines (truck categories with their slot occupancy), the per-contractor
// order number, and the Pending/Scheduled/Done/Canceled lifecycle.
//
// Key invariants:
//   - Category signatures are pairwise distinct (ValidateCategoriesUnique)
//   - Categories holding an assignation survive updates untouched unless the
//     caller explicitly forces an edit
//   - Status transitions follow the Status state machine
type Job struct {
	id            kernel.UUID
	contractorID  kernel.UUID
	orderNumber   int
	details       Details
	status        Status
	onHold        bool
	onSite        bool
	generalJobID  *kernel.UUID
	categories    []*TruckCategory
	finishedAt    *time.Time
	canceledAt    *time.Time
	paidAt        *time.Time
	isConstructed bool
}

// NewJob creates a Pending job with the given requirement lines. The order
// number must come from the per-contractor atomic sequence.
func NewJob(
	id kernel.UUID,
	contractorID kernel.UUID,
	orderNumber int,
	details Details,
	categories []*TruckCategory,
	generalJobID *kernel.UUID,
) (*Job, error) {
	return RestoreJob(id, contractorID, orderNumber, details, Pending,
		false, false, categories, generalJobID, nil, nil, nil)
}

// RestoreJob reconstructs a job from persistence.
func RestoreJob(
	id kernel.UUID,
	contractorID kernel.UUID,
	orderNumber int,
	details Details,
	status Status,
	onHold, onSite bool,
	categories []*TruckCategory,
	generalJobID *kernel.UUID,
	finishedAt, canceledAt, paidAt *time.Time,
) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := contractorID.Validate(); err != nil {
		return nil, err
	}
	if orderNumber <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%d is not greater than 0", orderNumber))
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errs.NewValueIsRequiredError("truckCategories")
	}
	if err := ValidateCategoriesUnique(categories); err != nil {
		return nil, err
	}
	if generalJobID != nil {
		if err := generalJobID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Job{
		id:            id,
		contractorID:  contractorID,
		orderNumber:   orderNumber,
		details:       details,
		status:        status,
		onHold:        onHold,
		onSite:        onSite,
		categories:    categories,
		generalJobID:  generalJobID,
		finishedAt:    finishedAt,
		canceledAt:    canceledAt,
		paidAt:        paidAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's identifier.
func (j *Job) ID() kernel.UUID { return j.id }

// ContractorID returns the owning contractor.
func (j *Job) ContractorID() kernel.UUID { return j.contractorID }

// OrderNumber returns the per-contractor sequential order number.
func (j *Job) OrderNumber() int { return j.orderNumber }

// Details returns the descriptive part of the order.
func (j *Job) Details() Details { return j.details }

// Status returns the current lifecycle status.
func (j *Job) Status() Status { return j.status }

// OnHold reports whether time and billing accrual is suspended.
func (j *Job) OnHold() bool { return j.onHold }

// OnSite reports whether clock-in requires physical presence at the site.
func (j *Job) OnSite() bool { return j.onSite }

// GeneralJobID returns the optional customer-level grouping reference.
func (j *Job) GeneralJobID() *kernel.UUID { return j.generalJobID }

// Categories returns the job's requirement lines.
func (j *Job) Categories() []*TruckCategory { return j.categories }

// FinishedAt returns when the job completed, if it has.
func (j *Job) FinishedAt() *time.Time { return j.finishedAt }

// CanceledAt returns when the job was canceled, if it was.
func (j *Job) CanceledAt() *time.Time { return j.canceledAt }

// PaidAt returns when the job was paid out, if it was.
func (j *Job) PaidAt() *time.Time { return j.paidAt }

// Category returns the requirement line with the given id.
func (j *Job) Category(id kernel.UUID) (*TruckCategory, error) {
	for _, c := range j.categories {
		if c.ID().IsEqual(id) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("categoryId", id.String(), ErrCategoryNotFound)
}

// CategoryHolding returns the requirement line binding the given assignation.
func (j *Job) CategoryHolding(assignationID kernel.UUID) (*TruckCategory, error) {
	for _, c := range j.categories {
		if c.HoldsAssignation(assignationID) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("assignationId", assignationID.String(),
		ErrCategoryNotFound)
}

// HasOccupiedSlots reports whether any requirement line holds an assignation.
func (j *Job) HasOccupiedSlots() bool {
	for _, c := range j.categories {
		if c.OccupiedSlotCount() > 0 {
			return true
		}
	}
	return false
}

// MarkScheduled records that an assignation batch was scheduled against the job.
func (j *Job) MarkScheduled() error {
	newStatus, err := j.status.Schedule()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// Finish marks the job Done.
func (j *Job) Finish(at time.Time) error {
	newStatus, err := j.status.Finish()
	if err != nil {
		return err
	}
	j.status = newStatus
	j.finishedAt = &at
	return nil
}

// Cancel marks the job Canceled and frees every occupied category slot.
func (j *Job) Cancel(at time.Time) error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}
	j.status = newStatus
	j.canceledAt = &at
	for _, c := range j.categories {
		c.ReleaseAllSlots()
	}
	return nil
}

// MarkPaid records payout. Legal only after completion.
func (j *Job) MarkPaid(at time.Time) error {
	if j.status != Done {
		return errs.NewIllegalStateTransitionErrorWithCause("job payout",
			fmt.Errorf("%s is not a valid status to mark paid", j.status))
	}
	j.paidAt = &at
	return nil
}

// HoldOrContinue toggles the on-hold flag. Holding suspends downstream time
// and billing accrual without changing the lifecycle status.
func (j *Job) HoldOrContinue(hold bool) error {
	if j.status.IsTerminal() {
		return errs.NewIllegalStateTransitionErrorWithCause("job hold",
			fmt.Errorf("%s is not a valid status to hold or continue", j.status))
	}
	j.onHold = hold
	return nil
}

// ExtendFinishTime moves the end date forward. The caller is responsible for
// checking the scheduled instance is still Pending or Started.
func (j *Job) ExtendFinishTime(newEnd time.Time) error {
	if j.status.IsTerminal() {
		return errs.NewIllegalStateTransitionErrorWithCause("job extend",
			fmt.Errorf("%s is not a valid status to extend", j.status))
	}
	if !newEnd.After(j.details.endDate) {
		return errs.NewValueIsInvalidErrorWithCause("newEnd",
			fmt.Errorf("%s does not extend current end %s", newEnd, j.details.endDate))
	}
	details, err := j.details.withEndDate(newEnd)
	if err != nil {
		return err
	}
	j.details = details
	return nil
}

// SubstituteMaterial swaps the hauled material in place without a reschedule.
func (j *Job) SubstituteMaterial(material string) error {
	if j.status.IsTerminal() {
		return errs.NewIllegalStateTransitionErrorWithCause("job material switch",
			fmt.Errorf("%s is not a valid status to switch material", j.status))
	}
	details, err := j.details.withMaterial(material)
	if err != nil {
		return err
	}
	j.details = details
	return nil
}

// UpdateDetails replaces the descriptive part of the order.
func (j *Job) UpdateDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if j.status.IsTerminal() {
		return errs.NewIllegalStateTransitionErrorWithCause("job update",
			fmt.Errorf("%s is not a valid status to update", j.status))
	}
	j.details = details
	return nil
}

// SetOnSite toggles whether clock-in requires geofence presence.
func (j *Job) SetOnSite(onSite bool) {
	j.onSite = onSite
}

// SetGeneralJob links or unlinks the customer-level grouping.
func (j *Job) SetGeneralJob(generalJobID *kernel.UUID) error {
	if generalJobID != nil {
		if err := generalJobID.Validate(); err != nil {
			return err
		}
	}
	j.generalJobID = generalJobID
	return nil
}

// ReplaceCategories swaps the job's requirement lines for the incoming set.
//
// Occupancy rules:
//   - A category holding an assignation always survives. An incoming line
//     with the same id may change its definition only when allowEditOccupied
//     is set; then it adopts the existing occupancy (the new amount must
//     still hold every occupied slot). Without allowEditOccupied a changed
//     definition is rejected; re-stating the line unchanged is fine.
//   - Incoming lines with fresh ids start with all slots open.
//
// The combined set must satisfy the signature uniqueness invariant; on any
// violation the job is left untouched.
func (j *Job) ReplaceCategories(incoming []*TruckCategory, allowEditOccupied bool) error {
	if j.status.IsTerminal() {
		return errs.NewIllegalStateTransitionErrorWithCause("job categories",
			fmt.Errorf("%s is not a valid status to edit categories", j.status))
	}
	if len(incoming) == 0 {
		return errs.NewValueIsRequiredError("truckCategories")
	}

	incomingByID := make(map[kernel.UUID]*TruckCategory, len(incoming))
	for _, c := range incoming {
		if err := c.Validate(); err != nil {
			return err
		}
		incomingByID[c.ID()] = c
	}

	final := make([]*TruckCategory, 0, len(incoming))
	kept := make(map[kernel.UUID]struct{})

	for _, existing := range j.categories {
		if existing.OccupiedSlotCount() == 0 {
			continue
		}
		replacement, edited := incomingByID[existing.ID()]
		switch {
		case edited && allowEditOccupied:
			if err := replacement.adoptOccupancy(existing); err != nil {
				return err
			}
			final = append(final, replacement)
		case edited && !replacement.sameDefinition(existing):
			return errs.NewIllegalStateTransitionErrorWithCause("job categories",
				fmt.Errorf("category %s holds assignations and cannot be edited without force",
					existing.ID()))
		default:
			final = append(final, existing)
		}
		kept[existing.ID()] = struct{}{}
	}

	for _, c := range incoming {
		if _, ok := kept[c.ID()]; ok {
			continue
		}
		final = append(final, c)
	}

	if err := ValidateCategoriesUnique(final); err != nil {
		return err
	}

	j.categories = final
	return nil
}
