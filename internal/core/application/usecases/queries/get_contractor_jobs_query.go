package queries

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrGetContractorJobsQueryIsNotConstructed = errors.New(
	"GetContractorJobsQuery must be created via NewGetContractorJobsQuery constructor",
)

// GetContractorJobsQuery lists a contractor's jobs for their board view.
type GetContractorJobsQuery struct {
	contractorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetContractorJobsQuery creates a query for a contractor's jobs.
func NewGetContractorJobsQuery(contractorID kernel.UUID) (GetContractorJobsQuery, error) {
	if err := contractorID.Validate(); err != nil {
		return GetContractorJobsQuery{}, err
	}
	return GetContractorJobsQuery{
		contractorID: contractorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContractorJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetContractorJobsQueryIsNotConstructed)
}

// ContractorID returns the contractor whose jobs are listed.
func (q GetContractorJobsQuery) ContractorID() kernel.UUID { return q.contractorID }

// GetContractorJobsQueryResponse is one row of the contractor's job board.
type GetContractorJobsQueryResponse struct {
	ID          kernel.UUID
	OrderNumber int
	Name        *string
	Material    string
	Status      string
	OnHold      bool
	StartDate   time.Time
	EndDate     time.Time
}
