package queries

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrGetPendingRequestTrucksQueryIsNotConstructed = errors.New(
	"GetPendingRequestTrucksQuery must be created via NewGetPendingRequestTrucksQuery constructor",
)

// GetPendingRequestTrucksQuery lists a contractor's open truck requests so
// dispatch can turn them into jobs.
type GetPendingRequestTrucksQuery struct {
	contractorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingRequestTrucksQuery creates a query for open truck requests.
func NewGetPendingRequestTrucksQuery(contractorID kernel.UUID) (GetPendingRequestTrucksQuery, error) {
	if err := contractorID.Validate(); err != nil {
		return GetPendingRequestTrucksQuery{}, err
	}
	return GetPendingRequestTrucksQuery{
		contractorID: contractorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRequestTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestTrucksQueryIsNotConstructed)
}

// ContractorID returns the contractor whose requests are listed.
func (q GetPendingRequestTrucksQuery) ContractorID() kernel.UUID { return q.contractorID }

// GetPendingRequestTrucksQueryResponse is one open truck request.
type GetPendingRequestTrucksQueryResponse struct {
	ID        kernel.UUID
	ForemanID kernel.UUID
	Name      *string
	Material  string
	StartDate time.Time
	CreatedAt time.Time
}
