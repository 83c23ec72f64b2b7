// Package truck provides the truck vocabulary used by category matching:
// truck types, subtypes, and the read-only Truck directory entry. Trucks
// themselves are managed by the company profile service; this engine only
// reads them to match (driver, truck) pairs against category requirements.
package truck

import (
	"fmt"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
var ErrTruckIsNotConstructed = errs.NewValueIsRequiredError(
	"truck must be created via NewTruck constructor")

// Type is the coarse truck classification a category requirement names.
type Type string

// Known truck types.
const (
	TypeDump     Type = "DUMP"
	TypeTransfer Type = "TRANSFER"
	TypeFlatbed  Type = "FLATBED"
	TypeTanker   Type = "TANKER"
	TypeLowbed   Type = "LOWBED"
)

func getValidTypes() map[Type]struct{} {
	return map[Type]struct{}{
		TypeDump:     {},
		TypeTransfer: {},
		TypeFlatbed:  {},
		TypeTanker:   {},
		TypeLowbed:   {},
	}
}

// Validate checks the type is part of the known vocabulary.
func (t Type) Validate() error {
	if _, ok := getValidTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("truckType is invalid",
			fmt.Errorf("%q is not a valid truck type", string(t)))
	}
	return nil
}

// Subtype refines a truck type, for example axle configuration.
type Subtype string

// Known truck subtypes.
const (
	SubtypeTandem  Subtype = "TANDEM"
	SubtypeTriaxle Subtype = "TRIAXLE"
	SubtypeQuad    Subtype = "QUAD"
	SubtypeSuper10 Subtype = "SUPER_10"
	SubtypeSemi    Subtype = "SEMI"
)

func getValidSubtypes() map[Subtype]struct{} {
	return map[Subtype]struct{}{
		SubtypeTandem:  {},
		SubtypeTriaxle: {},
		SubtypeQuad:    {},
		SubtypeSuper10: {},
		SubtypeSemi:    {},
	}
}

// Validate checks the subtype is part of the known vocabulary.
func (s Subtype) Validate() error {
	if _, ok := getValidSubtypes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("truckSubtype is invalid",
			fmt.Errorf("%q is not a valid truck subtype", string(s)))
	}
	return nil
}

// Truck is a read-only directory entry: the identity and classification the
// matcher needs to place a (driver, truck) pair into a category slot.
type Truck struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	ownerID kernel.UUID
	typ     Type
	subtype Subtype
	guard   guard.ConstructorGuard
}

// NewTruck creates a validated Truck directory entry.
func NewTruck(id, ownerID kernel.UUID, typ Type, subtype Subtype) (Truck, error) {
	if err := id.Validate(); err != nil {
		return Truck{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return Truck{}, err
	}
	if err := typ.Validate(); err != nil {
		return Truck{}, err
	}
	if err := subtype.Validate(); err != nil {
		return Truck{}, err
	}

	return Truck{
		id:      id,
		ownerID: ownerID,
		typ:     typ,
		subtype: subtype,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Truck was built through its constructor.
func (t Truck) Validate() error {
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// ID returns the truck's identifier.
func (t Truck) ID() kernel.UUID {
	return t.id
}

// OwnerID returns the owner the truck belongs to.
func (t Truck) OwnerID() kernel.UUID {
	return t.ownerID
}

// Type returns the truck's classification.
func (t Truck) Type() Type {
	return t.typ
}

// Subtype returns the truck's refinement.
func (t Truck) Subtype() Subtype {
	return t.subtype
}
