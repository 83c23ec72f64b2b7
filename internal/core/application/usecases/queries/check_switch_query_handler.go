package queries

import (
	"context"
	"database/sql"
	"errors"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/switchjob"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckSwitchQueryHandler reads the outstanding switch for an assignation
// straight from storage, together with whether the destination job is still
// live. A destination that went terminal while the request was pending is
// reported so the driver does not travel to a dead site.
type CheckSwitchQueryHandler struct {
	db *gorm.DB
}

// NewCheckSwitchQueryHandler creates a handler for switch status checks.
func NewCheckSwitchQueryHandler(db *gorm.DB) CheckSwitchQueryHandler {
	return CheckSwitchQueryHandler{db: db}
}

// Handle executes the query. A missing row is not an error: the response
// simply reports no outstanding request.
func (h CheckSwitchQueryHandler) Handle(
	ctx context.Context,
	query CheckSwitchQuery,
) (CheckSwitchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckSwitchQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			sw.id,
			sw.final_job_id,
			j.status
		FROM switch_jobs sw
		JOIN jobs j ON j.id = sw.final_job_id
		WHERE sw.assignation_id = ? AND sw.status = ?
	`, query.AssignationID().Bytes(), int(switchjob.Requested)).Row()

	var id, finalJobID uuid.UUID
	var destinationStatus int
	if err := row.Scan(&id, &finalJobID, &destinationStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CheckSwitchQueryResponse{}, nil
		}
		return CheckSwitchQueryResponse{}, err
	}

	switchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CheckSwitchQueryResponse{}, err
	}
	jobID, err := kernel.UUIDFromBytes(finalJobID[:])
	if err != nil {
		return CheckSwitchQueryResponse{}, err
	}

	return CheckSwitchQueryResponse{
		Outstanding:  true,
		SwitchID:     switchID,
		FinalJobID:   jobID,
		FinalJobLive: !job.Status(destinationStatus).IsTerminal(),
	}, nil
}
