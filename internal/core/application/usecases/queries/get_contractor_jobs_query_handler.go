package queries

import (
	"context"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetContractorJobsQueryHandler reads a contractor's job board from storage.
type GetContractorJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetContractorJobsQueryHandler creates a handler for job board queries.
func NewGetContractorJobsQueryHandler(db *gorm.DB) GetContractorJobsQueryHandler {
	return GetContractorJobsQueryHandler{db: db}
}

// Handle executes the query. Newest orders come first.
func (h GetContractorJobsQueryHandler) Handle(
	ctx context.Context,
	query GetContractorJobsQuery,
) ([]GetContractorJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetContractorJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			name,
			material,
			status,
			on_hold,
			start_date,
			end_date
		FROM jobs
		WHERE contractor_id = ?
		ORDER BY order_number DESC
	`, query.ContractorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetContractorJobsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.Name,
			&resp.Material,
			&status,
			&resp.OnHold,
			&resp.StartDate,
			&resp.EndDate,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = jobID
		resp.Status = job.Status(status).String()

		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
