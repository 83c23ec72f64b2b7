package http

import (
	"time"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/core/domain/model/truck"
)

// SiteRequest carries one pickup or drop location.
type SiteRequest struct {
	Address   string  `json:"address" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

func (r SiteRequest) toDomain() (kernel.Site, error) {
	point, err := kernel.NewGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return kernel.Site{}, err
	}
	return kernel.NewSite(r.Address, point)
}

// DetailsRequest carries the descriptive fields shared by jobs and truck
// requests.
type DetailsRequest struct {
	Name       *string     `json:"name"`
	StartDate  time.Time   `json:"startDate" validate:"required"`
	EndDate    time.Time   `json:"endDate" validate:"required"`
	Material   string      `json:"material" validate:"required"`
	Directions string      `json:"directions"`
	PaymentDue time.Time   `json:"paymentDue"`
	LoadSite   SiteRequest `json:"loadSite" validate:"required"`
	DumpSite   SiteRequest `json:"dumpSite" validate:"required"`
}

func (r DetailsRequest) toDomain() (job.Details, error) {
	loadSite, err := r.LoadSite.toDomain()
	if err != nil {
		return job.Details{}, err
	}
	dumpSite, err := r.DumpSite.toDomain()
	if err != nil {
		return job.Details{}, err
	}
	return job.NewDetails(r.Name, r.StartDate, r.EndDate,
		r.Material, r.Directions, r.PaymentDue, loadSite, dumpSite)
}

// CategoryRequest carries one truck requirement line. A nil ID means a new
// line; a set ID addresses an existing line of the job being updated.
type CategoryRequest struct {
	ID               *string   `json:"id" validate:"omitempty,uuid"`
	TruckTypes       []string  `json:"truckTypes" validate:"required,min=1"`
	TruckSubtypes    []string  `json:"truckSubtypes"`
	Amount           int       `json:"amount" validate:"required,min=1"`
	PayBy            string    `json:"payBy" validate:"required,oneof=HOUR LOAD TON"`
	Prices           []float64 `json:"prices" validate:"required"`
	CustomerRates    []float64 `json:"customerRates" validate:"required"`
	PartnerRates     []float64 `json:"partnerRates" validate:"required"`
	PreferredTruckID *string   `json:"preferredTruckId" validate:"omitempty,uuid"`
}

func (r CategoryRequest) toInput() (commands.CategoryInput, error) {
	id, err := parseOptionalUUID(r.ID)
	if err != nil {
		return commands.CategoryInput{}, err
	}
	preferredTruckID, err := parseOptionalUUID(r.PreferredTruckID)
	if err != nil {
		return commands.CategoryInput{}, err
	}

	return commands.CategoryInput{
		ID:               id,
		TruckTypes:       toTruckTypes(r.TruckTypes),
		TruckSubtypes:    toTruckSubtypes(r.TruckSubtypes),
		Amount:           r.Amount,
		PayBy:            job.PayBy(r.PayBy),
		Rates: job.Rates{
			Prices:        r.Prices,
			CustomerRates: r.CustomerRates,
			PartnerRates:  r.PartnerRates,
		},
		PreferredTruckID: preferredTruckID,
	}, nil
}

// CreateJobRequest is the body of POST /{role}/jobs.
type CreateJobRequest struct {
	Details        DetailsRequest    `json:"details" validate:"required"`
	Categories     []CategoryRequest `json:"categories" validate:"required,min=1,dive"`
	OnSite         bool              `json:"onSite"`
	GeneralJobID   *string           `json:"generalJobId" validate:"omitempty,uuid"`
	RequestTruckID *string           `json:"requestTruckId" validate:"omitempty,uuid"`
}

// UpdateJobRequest is the body of PUT /{role}/jobs/:jobId.
type UpdateJobRequest struct {
	Details    DetailsRequest    `json:"details" validate:"required"`
	Categories []CategoryRequest `json:"categories" validate:"required,min=1,dive"`
	Force      bool              `json:"force"`
}

// DuplicateJobRequest is the body of POST /{role}/jobs/:jobId/duplicate.
type DuplicateJobRequest struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// HoldJobRequest is the body of PATCH /{role}/jobs/:jobId/hold.
type HoldJobRequest struct {
	Hold bool `json:"hold"`
}

// SwitchMaterialRequest is the body of PATCH /{role}/jobs/:jobId/material.
type SwitchMaterialRequest struct {
	Material string `json:"material" validate:"required"`
}

// ExtendFinishTimeRequest is the body of PATCH /{role}/jobs/:jobId/extend.
type ExtendFinishTimeRequest struct {
	NewEnd time.Time `json:"newEnd" validate:"required"`
}

// PairRequest names one (driver, truck) pair of a scheduling batch.
type PairRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid"`
	TruckID  string `json:"truckId" validate:"required,uuid"`
}

// ScheduleJobRequest is the body of POST /{role}/jobs/:jobId/schedule.
type ScheduleJobRequest struct {
	Pairs []PairRequest `json:"pairs" validate:"required,min=1,dive"`
}

func (r ScheduleJobRequest) toInputs() ([]commands.PairInput, error) {
	pairs := make([]commands.PairInput, 0, len(r.Pairs))
	for _, pair := range r.Pairs {
		driverID, err := kernel.UUIDFromString(pair.DriverID)
		if err != nil {
			return nil, err
		}
		truckID, err := kernel.UUIDFromString(pair.TruckID)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, commands.PairInput{DriverID: driverID, TruckID: truckID})
	}
	return pairs, nil
}

// EditAssignationRequest is the body of
// PUT /{role}/jobs/scheduled/:scheduledJobId/assignations/:assignationId.
type EditAssignationRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid"`
	TruckID  string `json:"truckId" validate:"required,uuid"`
}

// RemoveAssignationsRequest is the body of
// DELETE /{role}/jobs/scheduled/:scheduledJobId/assignations.
type RemoveAssignationsRequest struct {
	AssignationIDs []string `json:"assignationIds" validate:"required,min=1,dive,uuid"`
}

// ClockInRequest is the body of POST /{role}/jobs/clock-in. Position is
// optional; without it the geofence check is skipped.
type ClockInRequest struct {
	AssignationID string           `json:"assignationId" validate:"required,uuid"`
	Position      *GeoPointRequest `json:"position"`
}

// GeoPointRequest carries a reported device position.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// FinishAssignationRequest is the body of POST /{role}/jobs/clock-out.
type FinishAssignationRequest struct {
	AssignationID string `json:"assignationId" validate:"required,uuid"`
}

// ClockoutAssignationsRequest is the body of
// POST /{role}/jobs/scheduled/:scheduledJobId/clockout.
type ClockoutAssignationsRequest struct {
	AssignationIDs []string `json:"assignationIds" validate:"required,min=1,dive,uuid"`
}

// RequestSwitchRequest is the body of POST /{role}/jobs/switch-job-request.
// One switch is created per assignation; the batch is all-or-nothing.
type RequestSwitchRequest struct {
	AssignationIDs []string `json:"assignationIds" validate:"required,min=1,dive,uuid"`
	FinalJobID     string   `json:"finalJobId" validate:"required,uuid"`
}

// DecideSwitchRequest is the body of PATCH /{role}/jobs/accept-deny-switch.
// Position is the driver's reported location; when present the accept path
// verifies it against the destination site's geofence.
type DecideSwitchRequest struct {
	SwitchID string           `json:"switchId" validate:"required,uuid"`
	Accept   bool             `json:"accept"`
	Position *GeoPointRequest `json:"position"`
}

// DisputeRequest is the body of POST /{role}/jobs/dispute/:scheduledJobId.
type DisputeRequest struct {
	Message string `json:"message" validate:"required"`
}

// ReviewDisputeRequest is the body of POST /admin/jobs/dispute/:scheduledJobId.
type ReviewDisputeRequest struct {
	Upheld bool `json:"upheld"`
}

// LineRequest carries one requirement line of a truck request.
type LineRequest struct {
	TruckTypes    []string `json:"truckTypes" validate:"required,min=1"`
	TruckSubtypes []string `json:"truckSubtypes"`
	Amount        int      `json:"amount" validate:"required,min=1"`
}

// CreateRequestTruckRequest is the body of POST /foreman/request-truck.
type CreateRequestTruckRequest struct {
	GeneralJobID *string        `json:"generalJobId" validate:"omitempty,uuid"`
	Details      DetailsRequest `json:"details" validate:"required"`
	Lines        []LineRequest  `json:"lines" validate:"required,min=1,dive"`
}

func (r CreateRequestTruckRequest) toLines() []requesttruck.Line {
	lines := make([]requesttruck.Line, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, requesttruck.Line{
			TruckTypes:    toTruckTypes(line.TruckTypes),
			TruckSubtypes: toTruckSubtypes(line.TruckSubtypes),
			Amount:        line.Amount,
		})
	}
	return lines
}

func toCategoryInputs(reqs []CategoryRequest) ([]commands.CategoryInput, error) {
	inputs := make([]commands.CategoryInput, 0, len(reqs))
	for _, req := range reqs {
		input, err := req.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromString(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toTruckTypes(raw []string) []truck.Type {
	types := make([]truck.Type, 0, len(raw))
	for _, t := range raw {
		types = append(types, truck.Type(t))
	}
	return types
}

func toTruckSubtypes(raw []string) []truck.Subtype {
	subtypes := make([]truck.Subtype, 0, len(raw))
	for _, s := range raw {
		subtypes = append(subtypes, truck.Subtype(s))
	}
	return subtypes
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
