package http

import (
	"time"

	"hauling/internal/core/application/usecases/queries"
)

// IDResponse returns the identifier the engine minted for a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// IDsResponse returns the identifiers minted for a created batch, in request
// order.
type IDsResponse struct {
	IDs []string `json:"ids"`
}

// JobSummaryResponse is one row of the contractor's job board.
type JobSummaryResponse struct {
	ID          string    `json:"id"`
	OrderNumber int       `json:"orderNumber"`
	Name        *string   `json:"name"`
	Material    string    `json:"material"`
	Status      string    `json:"status"`
	OnHold      bool      `json:"onHold"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func toJobSummaries(rows []queries.GetContractorJobsQueryResponse) []JobSummaryResponse {
	summaries := make([]JobSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, JobSummaryResponse{
			ID:          row.ID.String(),
			OrderNumber: row.OrderNumber,
			Name:        row.Name,
			Material:    row.Material,
			Status:      row.Status,
			OnHold:      row.OnHold,
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
		})
	}
	return summaries
}

// MissedJobResponse is one scheduled job whose start date has passed without
// anyone clocking in.
type MissedJobResponse struct {
	ScheduledJobID string    `json:"scheduledJobId"`
	JobID          string    `json:"jobId"`
	StartDate      time.Time `json:"startDate"`
	ZeroRated      bool      `json:"zeroRated"`
}

func toMissedJobs(rows []queries.FindMissedJobsQueryResponse) []MissedJobResponse {
	missed := make([]MissedJobResponse, 0, len(rows))
	for _, row := range rows {
		missed = append(missed, MissedJobResponse{
			ScheduledJobID: row.ScheduledJobID.String(),
			JobID:          row.JobID.String(),
			StartDate:      row.StartDate,
			ZeroRated:      row.ZeroRated,
		})
	}
	return missed
}

// PendingRequestTruckResponse is one open truck request of the contractor's
// queue.
type PendingRequestTruckResponse struct {
	ID        string    `json:"id"`
	ForemanID string    `json:"foremanId"`
	Name      *string   `json:"name"`
	Material  string    `json:"material"`
	StartDate time.Time `json:"startDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPendingRequestTrucks(rows []queries.GetPendingRequestTrucksQueryResponse) []PendingRequestTruckResponse {
	requests := make([]PendingRequestTruckResponse, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, PendingRequestTruckResponse{
			ID:        row.ID.String(),
			ForemanID: row.ForemanID.String(),
			Name:      row.Name,
			Material:  row.Material,
			StartDate: row.StartDate,
			CreatedAt: row.CreatedAt,
		})
	}
	return requests
}

// CheckSwitchResponse reports whether an assignation has an outstanding
// switch request. The ids are empty when nothing is pending. FinalJobLive is
// false when the destination job went terminal while the request was open.
type CheckSwitchResponse struct {
	Outstanding  bool   `json:"outstanding"`
	SwitchID     string `json:"switchId,omitempty"`
	FinalJobID   string `json:"finalJobId,omitempty"`
	FinalJobLive bool   `json:"finalJobLive"`
}

func toCheckSwitch(row queries.CheckSwitchQueryResponse) CheckSwitchResponse {
	resp := CheckSwitchResponse{Outstanding: row.Outstanding}
	if row.Outstanding {
		resp.SwitchID = row.SwitchID.String()
		resp.FinalJobID = row.FinalJobID.String()
		resp.FinalJobLive = row.FinalJobLive
	}
	return resp
}
