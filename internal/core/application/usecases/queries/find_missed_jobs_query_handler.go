package queries

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindMissedJobsQueryHandler reads missed scheduled jobs from storage.
type FindMissedJobsQueryHandler struct {
	db *gorm.DB
}

// NewFindMissedJobsQueryHandler creates a handler for missed job lookups.
func NewFindMissedJobsQueryHandler(db *gorm.DB) FindMissedJobsQueryHandler {
	return FindMissedJobsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by the job's start date so
// the oldest misses come first.
func (h FindMissedJobsQueryHandler) Handle(
	ctx context.Context,
	query FindMissedJobsQuery,
) ([]FindMissedJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	missed := make([]FindMissedJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sj.id,
			sj.job_id,
			sj.zero_rated,
			j.start_date
		FROM scheduled_jobs sj
		JOIN jobs j ON j.id = sj.job_id
		WHERE sj.status = ? AND j.start_date < ?
		ORDER BY j.start_date
	`, int(schedule.Pending), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp FindMissedJobsQueryResponse
		var id, jobID uuid.UUID

		if err = rows.Scan(&id, &jobID, &resp.ZeroRated, &resp.StartDate); err != nil {
			return nil, err
		}

		scheduledJobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ScheduledJobID = scheduledJobID

		missedJobID, idErr := kernel.UUIDFromBytes(jobID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.JobID = missedJobID

		missed = append(missed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missed, nil
}
