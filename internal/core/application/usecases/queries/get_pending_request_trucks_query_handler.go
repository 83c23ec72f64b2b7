package queries

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRequestTrucksQueryHandler reads a contractor's open truck
// requests from storage.
type GetPendingRequestTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestTrucksQueryHandler creates a handler for open truck
// request queries.
func NewGetPendingRequestTrucksQueryHandler(db *gorm.DB) GetPendingRequestTrucksQueryHandler {
	return GetPendingRequestTrucksQueryHandler{db: db}
}

// Handle executes the query. Oldest requests come first so the queue drains
// in arrival order.
func (h GetPendingRequestTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestTrucksQuery,
) ([]GetPendingRequestTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingRequestTrucksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			foreman_id,
			name,
			material,
			start_date,
			created_at
		FROM request_trucks
		WHERE contractor_id = ? AND status = ?
		ORDER BY created_at
	`, query.ContractorID().Bytes(), int(requesttruck.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingRequestTrucksQueryResponse
		var id, foremanID uuid.UUID

		err = rows.Scan(
			&id,
			&foremanID,
			&resp.Name,
			&resp.Material,
			&resp.StartDate,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requestID

		foreman, idErr := kernel.UUIDFromBytes(foremanID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ForemanID = foreman

		requests = append(requests, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
