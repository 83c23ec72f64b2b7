package requesttruck

import (
	"errors"
	"fmt"
	"time"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"
)

// ErrRequestTruckIsNotConstructed is returned when using an improperly initialized RequestTruck.
var ErrRequestTruckIsNotConstructed = errors.New(
	"RequestTruck must be created via NewRequestTruck or RestoreRequestTruck")

const maxLineAmount = 100

// Line is one requested capacity line: acceptable truck types/subtypes and
// how many trucks of them. Lines carry no rates; pricing is decided when the
// contractor converts the request into a job.
type Line struct {
	TruckTypes    []truck.Type
	TruckSubtypes []truck.Subtype
	Amount        int
}

func (l Line) validate() error {
	if len(l.TruckTypes) == 0 {
		return errs.NewValueIsRequiredError("truckTypes")
	}
	for _, t := range l.TruckTypes {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, s := range l.TruckSubtypes {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if l.Amount < 1 || l.Amount > maxLineAmount {
		return errs.NewValueIsOutOfRangeError("amount", l.Amount, 1, maxLineAmount)
	}
	return nil
}

// RequestTruck is a foreman's ask for hauling capacity: a proto-job with the
// work details and the wanted truck lines, but no pricing. A contractor
// reviews the queue and fulfills a request by creating a real job from it;
// fulfillment is a once-only transition.
type RequestTruck struct {
	id            kernel.UUID
	contractorID  kernel.UUID
	foremanID     kernel.UUID
	generalJobID  *kernel.UUID
	details       job.Details
	lines         []Line
	status        Status
	createdAt     time.Time
	fulfilledAt   *time.Time
	isConstructed bool
}

// NewRequestTruck creates a pending truck request.
func NewRequestTruck(
	id, contractorID, foremanID kernel.UUID,
	generalJobID *kernel.UUID,
	details job.Details,
	lines []Line,
	createdAt time.Time,
) (*RequestTruck, error) {
	return RestoreRequestTruck(id, contractorID, foremanID, generalJobID, details, lines,
		Pending, createdAt, nil)
}

// RestoreRequestTruck reconstructs a truck request from persistence.
func RestoreRequestTruck(
	id, contractorID, foremanID kernel.UUID,
	generalJobID *kernel.UUID,
	details job.Details,
	lines []Line,
	status Status,
	createdAt time.Time,
	fulfilledAt *time.Time,
) (*RequestTruck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := contractorID.Validate(); err != nil {
		return nil, err
	}
	if err := foremanID.Validate(); err != nil {
		return nil, err
	}
	if generalJobID != nil {
		if err := generalJobID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if err := l.validate(); err != nil {
			return nil, err
		}
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &RequestTruck{
		id:            id,
		contractorID:  contractorID,
		foremanID:     foremanID,
		generalJobID:  generalJobID,
		details:       details,
		lines:         lines,
		status:        status,
		createdAt:     createdAt,
		fulfilledAt:   fulfilledAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the RequestTruck was created through a constructor.
func (r *RequestTruck) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestTruckIsNotConstructed
	}
	return nil
}

// ID returns the request's identifier.
func (r *RequestTruck) ID() kernel.UUID { return r.id }

// ContractorID returns the contractor the ask is addressed to.
func (r *RequestTruck) ContractorID() kernel.UUID { return r.contractorID }

// ForemanID returns the foreman who raised the ask.
func (r *RequestTruck) ForemanID() kernel.UUID { return r.foremanID }

// GeneralJobID returns the optional customer-level grouping reference.
func (r *RequestTruck) GeneralJobID() *kernel.UUID { return r.generalJobID }

// Details returns the proto-job work details.
func (r *RequestTruck) Details() job.Details { return r.details }

// Lines returns the requested capacity lines.
func (r *RequestTruck) Lines() []Line { return r.lines }

// Status returns the request's current state.
func (r *RequestTruck) Status() Status { return r.status }

// CreatedAt returns when the request was raised.
func (r *RequestTruck) CreatedAt() time.Time { return r.createdAt }

// FulfilledAt returns when the request was fulfilled, nil otherwise.
func (r *RequestTruck) FulfilledAt() *time.Time { return r.fulfilledAt }

// MarkFulfilled records that a contractor turned the ask into a job. Legal
// once, from Pending only; a concurrent second fulfillment surfaces as an
// illegal transition under the repository's row lock.
func (r *RequestTruck) MarkFulfilled(at time.Time) error {
	newStatus, err := r.status.Fulfill()
	if err != nil {
		return errs.NewConflictErrorWithCause("request truck",
			fmt.Errorf("request %s already resolved: %w", r.id, err))
	}
	r.status = newStatus
	r.fulfilledAt = &at
	return nil
}

// Close withdraws a pending request without fulfilling it.
func (r *RequestTruck) Close() error {
	newStatus, err := r.status.Close()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}
