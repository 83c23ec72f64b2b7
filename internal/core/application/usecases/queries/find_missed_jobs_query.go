package queries

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrFindMissedJobsQueryIsNotConstructed = errors.New(
	"FindMissedJobsQuery must be created via NewFindMissedJobsQuery constructor",
)

// FindMissedJobsQuery lists scheduled jobs that never started even though
// their job's start time passed the cutoff. Exposed to the reviews
// collaborator and used to audit the daily sweep.
type FindMissedJobsQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewFindMissedJobsQuery creates a query for scheduled jobs missed before the
// cutoff.
func NewFindMissedJobsQuery(cutoff time.Time) (FindMissedJobsQuery, error) {
	if cutoff.IsZero() {
		return FindMissedJobsQuery{}, errors.New("cutoff time is required")
	}
	return FindMissedJobsQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindMissedJobsQuery) Validate() error {
	return q.guard.Validate(ErrFindMissedJobsQueryIsNotConstructed)
}

// Cutoff returns the query's cutoff time.
func (q FindMissedJobsQuery) Cutoff() time.Time { return q.cutoff }

// FindMissedJobsQueryResponse is one missed scheduled job.
type FindMissedJobsQueryResponse struct {
	ScheduledJobID kernel.UUID
	JobID          kernel.UUID
	StartDate      time.Time
	ZeroRated      bool
}
