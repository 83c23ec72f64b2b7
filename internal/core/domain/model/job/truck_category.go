package job

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"
)

// Domain errors for truck category operations.
var (
	// ErrTruckCategoryIsNotConstructed is returned when using an improperly initialized TruckCategory.
	ErrTruckCategoryIsNotConstructed = errors.New(
		"TruckCategory must be created via NewTruckCategory or RestoreTruckCategory")
	// ErrDuplicateCategorySignature is returned when two categories of one job
	// share the same (truckTypes, truckSubtypes) signature.
	ErrDuplicateCategorySignature = errs.NewValueIsInvalidError(
		"truck categories must have pairwise distinct type/subtype signatures")
)

// PayBy is the billing unit a category line is priced in.
type PayBy string

// Known billing units.
const (
	PayByHour PayBy = "HOUR"
	PayByLoad PayBy = "LOAD"
	PayByTon  PayBy = "TON"
)

// Validate checks the billing unit is known.
func (p PayBy) Validate() error {
	switch p {
	case PayByHour, PayByLoad, PayByTon:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payBy is invalid",
			fmt.Errorf("%q is not a valid billing unit", string(p)))
	}
}

// Rates carries the per-type price lines of a category: what the customer is
// charged, what the partner (truck owner) is paid, and the posted price.
// Each slice is parallel to the category's truckTypes.
type Rates struct {
	Prices        []float64
	CustomerRates []float64
	PartnerRates  []float64
}

func (r Rates) validate(typeCount int) error {
	for name, rates := range map[string][]float64{
		"price":        r.Prices,
		"customerRate": r.CustomerRates,
		"partnerRate":  r.PartnerRates,
	} {
		if len(rates) != typeCount {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("expected %d rate lines, got %d", typeCount, len(rates)))
		}
		for _, rate := range rates {
			if rate < 0 {
				return errs.NewValueIsInvalidErrorWithCause(name,
					fmt.Errorf("%f is negative", rate))
			}
		}
	}
	return nil
}

// SlotState tags a category slot as empty or occupied. Occupancy is an
// explicit variant instead of a nullable assignation reference so a slot is
// never half-filled.
type SlotState int

const (
	// SlotOpen marks a slot with no assignation bound.
	SlotOpen SlotState = iota + 1

	// SlotOccupied marks a slot bound to exactly one assignation.
	SlotOccupied
)

// Slot is one unit of a category's requested amount.
type Slot struct {
	state         SlotState
	assignationID kernel.UUID
}

// RestoreSlot reconstructs a slot from persistence.
func RestoreSlot(state SlotState, assignationID kernel.UUID) (Slot, error) {
	switch state {
	case SlotOpen:
		return Slot{state: SlotOpen}, nil
	case SlotOccupied:
		if err := assignationID.Validate(); err != nil {
			return Slot{}, err
		}
		return Slot{state: SlotOccupied, assignationID: assignationID}, nil
	default:
		return Slot{}, errs.NewValueIsInvalidErrorWithCause("slot state",
			fmt.Errorf("%d is not a valid slot state", state))
	}
}

// State returns the slot's occupancy tag.
func (s Slot) State() SlotState {
	return s.state
}

// AssignationID returns the bound assignation for occupied slots and the zero
// UUID for open ones.
func (s Slot) AssignationID() kernel.UUID {
	return s.assignationID
}

// TruckCategory is a requirement line within a job: which truck types and
// subtypes are acceptable, how many trucks are requested, and how the work is
// priced. The requested amount materializes as that many slots, each either
// open or occupied by one assignation.
type TruckCategory struct {
	id               kernel.UUID
	truckTypes       []truck.Type
	truckSubtypes    []truck.Subtype
	payBy            PayBy
	rates            Rates
	preferredTruckID *kernel.UUID
	slots            []Slot
	isConstructed    bool
}

// NewTruckCategory creates a requirement line with all slots open.
// The amount must be positive; types must be non-empty and valid; rate lines
// must be parallel to the types.
func NewTruckCategory(
	id kernel.UUID,
	truckTypes []truck.Type,
	truckSubtypes []truck.Subtype,
	amount int,
	payBy PayBy,
	rates Rates,
	preferredTruckID *kernel.UUID,
) (*TruckCategory, error) {
	slots := make([]Slot, amount)
	for i := range slots {
		slots[i] = Slot{state: SlotOpen}
	}
	return newCategory(id, truckTypes, truckSubtypes, payBy, rates, preferredTruckID, slots)
}

// RestoreTruckCategory reconstructs a category from persistence, including
// slot occupancy.
func RestoreTruckCategory(
	id kernel.UUID,
	truckTypes []truck.Type,
	truckSubtypes []truck.Subtype,
	payBy PayBy,
	rates Rates,
	preferredTruckID *kernel.UUID,
	slots []Slot,
) (*TruckCategory, error) {
	return newCategory(id, truckTypes, truckSubtypes, payBy, rates, preferredTruckID, slots)
}

func newCategory(
	id kernel.UUID,
	truckTypes []truck.Type,
	truckSubtypes []truck.Subtype,
	payBy PayBy,
	rates Rates,
	preferredTruckID *kernel.UUID,
	slots []Slot,
) (*TruckCategory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(truckTypes) == 0 {
		return nil, errs.NewValueIsRequiredError("truckTypes")
	}
	for _, t := range truckTypes {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	for _, s := range truckSubtypes {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if err := payBy.Validate(); err != nil {
		return nil, err
	}
	if err := rates.validate(len(truckTypes)); err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, errs.NewValueIsOutOfRangeError("amount", len(slots), 1, maxCategoryAmount)
	}
	if len(slots) > maxCategoryAmount {
		return nil, errs.NewValueIsOutOfRangeError("amount", len(slots), 1, maxCategoryAmount)
	}
	if preferredTruckID != nil {
		if err := preferredTruckID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TruckCategory{
		id:               id,
		truckTypes:       slices.Clone(truckTypes),
		truckSubtypes:    slices.Clone(truckSubtypes),
		payBy:            payBy,
		rates:            rates,
		preferredTruckID: preferredTruckID,
		slots:            slices.Clone(slots),
		isConstructed:    true,
	}, nil
}

// maxCategoryAmount caps a single requirement line.
const maxCategoryAmount = 100

// Validate ensures the category was created through a constructor.
func (c *TruckCategory) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrTruckCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's identifier.
func (c *TruckCategory) ID() kernel.UUID {
	return c.id
}

// TruckTypes returns the acceptable truck types.
func (c *TruckCategory) TruckTypes() []truck.Type {
	return slices.Clone(c.truckTypes)
}

// TruckSubtypes returns the acceptable subtypes; empty means any subtype.
func (c *TruckCategory) TruckSubtypes() []truck.Subtype {
	return slices.Clone(c.truckSubtypes)
}

// Amount returns the requested number of trucks.
func (c *TruckCategory) Amount() int {
	return len(c.slots)
}

// PayBy returns the billing unit.
func (c *TruckCategory) PayBy() PayBy {
	return c.payBy
}

// Rates returns the category's price lines.
func (c *TruckCategory) Rates() Rates {
	return c.rates
}

// PreferredTruckID returns the preferred truck, if any.
func (c *TruckCategory) PreferredTruckID() *kernel.UUID {
	return c.preferredTruckID
}

// Slots returns a copy of the category's slots in order.
func (c *TruckCategory) Slots() []Slot {
	return slices.Clone(c.slots)
}

// Signature returns the canonical (truckTypes, truckSubtypes) signature used
// for the per-job uniqueness invariant. Order of the input lists is irrelevant.
func (c *TruckCategory) Signature() string {
	types := make([]string, len(c.truckTypes))
	for i, t := range c.truckTypes {
		types[i] = string(t)
	}
	subtypes := make([]string, len(c.truckSubtypes))
	for i, s := range c.truckSubtypes {
		subtypes[i] = string(s)
	}
	slices.Sort(types)
	slices.Sort(subtypes)
	return strings.Join(types, ",") + "|" + strings.Join(subtypes, ",")
}

// IsCompatible reports whether a truck of the given type/subtype may fill a
// slot of this category: the type must be listed, and the subtype must be
// listed unless the category accepts any subtype.
func (c *TruckCategory) IsCompatible(typ truck.Type, subtype truck.Subtype) bool {
	if !slices.Contains(c.truckTypes, typ) {
		return false
	}
	return len(c.truckSubtypes) == 0 || slices.Contains(c.truckSubtypes, subtype)
}

// IsExactMatch reports whether both the type and the subtype are explicitly
// listed. Exact matches are preferred over broader compatible categories.
func (c *TruckCategory) IsExactMatch(typ truck.Type, subtype truck.Subtype) bool {
	return slices.Contains(c.truckTypes, typ) && slices.Contains(c.truckSubtypes, subtype)
}

// IsScheduled reports whether every slot is occupied.
func (c *TruckCategory) IsScheduled() bool {
	return c.OpenSlotCount() == 0
}

// OpenSlotCount returns the number of slots still open.
func (c *TruckCategory) OpenSlotCount() int {
	open := 0
	for _, s := range c.slots {
		if s.state == SlotOpen {
			open++
		}
	}
	return open
}

// OccupiedSlotCount returns the number of slots bound to an assignation.
func (c *TruckCategory) OccupiedSlotCount() int {
	return len(c.slots) - c.OpenSlotCount()
}

// OccupySlot binds the first open slot to the given assignation.
// Returns a ConflictError when no slot is open, which callers surface as the
// "slot no longer available" race outcome.
func (c *TruckCategory) OccupySlot(assignationID kernel.UUID) error {
	if err := assignationID.Validate(); err != nil {
		return err
	}
	for i := range c.slots {
		if c.slots[i].state == SlotOpen {
			c.slots[i] = Slot{state: SlotOccupied, assignationID: assignationID}
			return nil
		}
	}
	return errs.NewConflictError("slot no longer available")
}

// ReleaseSlot frees the slot bound to the given assignation.
func (c *TruckCategory) ReleaseSlot(assignationID kernel.UUID) error {
	for i := range c.slots {
		if c.slots[i].state == SlotOccupied && c.slots[i].assignationID.IsEqual(assignationID) {
			c.slots[i] = Slot{state: SlotOpen}
			return nil
		}
	}
	return errs.NewObjectNotFoundError("assignation slot", assignationID.String())
}

// ReleaseAllSlots frees every occupied slot. Used when a scheduled job is
// canceled at job granularity.
func (c *TruckCategory) ReleaseAllSlots() {
	for i := range c.slots {
		c.slots[i] = Slot{state: SlotOpen}
	}
}

// HoldsAssignation reports whether any slot is bound to the given assignation.
func (c *TruckCategory) HoldsAssignation(assignationID kernel.UUID) bool {
	for _, s := range c.slots {
		if s.state == SlotOccupied && s.assignationID.IsEqual(assignationID) {
			return true
		}
	}
	return false
}

// adoptOccupancy copies the occupied slots of a previous version of this
// category line into the new definition. Fails when the new amount cannot
// hold the existing occupancy.
func (c *TruckCategory) adoptOccupancy(previous *TruckCategory) error {
	occupied := previous.OccupiedSlotCount()
	if occupied > len(c.slots) {
		return errs.NewIllegalStateTransitionErrorWithCause("category amount",
			fmt.Errorf("cannot shrink amount below %d occupied slots", occupied))
	}

	i := 0
	for _, s := range previous.slots {
		if s.state == SlotOccupied {
			c.slots[i] = s
			i++
		}
	}
	for ; i < len(c.slots); i++ {
		c.slots[i] = Slot{state: SlotOpen}
	}
	return nil
}

// sameDefinition reports whether the other line re-states this category
// unchanged: same trucks, amount, billing unit, rates and preference.
func (c *TruckCategory) sameDefinition(other *TruckCategory) bool {
	if c.Signature() != other.Signature() ||
		len(c.slots) != len(other.slots) ||
		c.payBy != other.payBy {
		return false
	}
	if !slices.Equal(c.rates.Prices, other.rates.Prices) ||
		!slices.Equal(c.rates.CustomerRates, other.rates.CustomerRates) ||
		!slices.Equal(c.rates.PartnerRates, other.rates.PartnerRates) {
		return false
	}
	switch {
	case c.preferredTruckID == nil && other.preferredTruckID == nil:
		return true
	case c.preferredTruckID == nil || other.preferredTruckID == nil:
		return false
	default:
		return c.preferredTruckID.IsEqual(*other.preferredTruckID)
	}
}

// ValidateCategoriesUnique enforces the per-job invariant that no two
// requirement lines share the same (truckTypes, truckSubtypes) signature.
// It runs before any create or edit mutation; a violation blocks the request.
func ValidateCategoriesUnique(categories []*TruckCategory) error {
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return err
		}
		sig := c.Signature()
		if _, ok := seen[sig]; ok {
			return ErrDuplicateCategorySignature
		}
		seen[sig] = struct{}{}
	}
	return nil
}
