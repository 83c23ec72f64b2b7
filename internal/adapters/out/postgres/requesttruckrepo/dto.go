// Package requesttruckrepo provides data transfer objects and mapping
// functions for truck request persistence. A request row owns its capacity
// line rows; lines carry no rates, so they stay simpler than job categories.
package requesttruckrepo

import (
	"time"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RequestTruckDTO represents the database structure for persisting truck
// requests.
type RequestTruckDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ForemanID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GeneralJobID *uuid.UUID `gorm:"type:uuid"`
	Name         *string    `gorm:"type:varchar(255)"`
	StartDate    time.Time  `gorm:"not null"`
	EndDate      time.Time  `gorm:"not null"`
	Material     string     `gorm:"type:varchar(255);not null"`
	Directions   string     `gorm:"type:text"`
	PaymentDue   time.Time
	LoadSite     SiteDTO   `gorm:"embedded;embeddedPrefix:load_"`
	DumpSite     SiteDTO   `gorm:"embedded;embeddedPrefix:dump_"`
	Status       int       `gorm:"type:int;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
	FulfilledAt  *time.Time
	Lines        []LineDTO `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for truck request entities.
func (RequestTruckDTO) TableName() string {
	return "request_trucks"
}

// SiteDTO represents an embedded load or dump location within the request table.
type SiteDTO struct {
	Address   string  `gorm:"type:varchar(512)"`
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// LineDTO represents one requested capacity line.
type LineDTO struct {
	RequestID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Position      int            `gorm:"type:int;primaryKey"`
	TruckTypes    pq.StringArray `gorm:"type:text[];not null"`
	TruckSubtypes pq.StringArray `gorm:"type:text[]"`
	Amount        int            `gorm:"type:int;not null"`
}

// TableName specifies the database table name for request line entities.
func (LineDTO) TableName() string {
	return "request_truck_lines"
}

// fromDomain converts a truck request domain aggregate to its database
// representation.
func fromDomain(aggregate *requesttruck.RequestTruck) RequestTruckDTO {
	requestID := aggregate.ID().Bytes()
	details := aggregate.Details()

	var generalJobID *uuid.UUID
	if id := aggregate.GeneralJobID(); id != nil {
		raw := id.Bytes()
		generalJobID = &raw
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for i, l := range aggregate.Lines() {
		types := make(pq.StringArray, 0, len(l.TruckTypes))
		for _, t := range l.TruckTypes {
			types = append(types, string(t))
		}
		subtypes := make(pq.StringArray, 0, len(l.TruckSubtypes))
		for _, s := range l.TruckSubtypes {
			subtypes = append(subtypes, string(s))
		}
		lines = append(lines, LineDTO{
			RequestID:     requestID,
			Position:      i,
			TruckTypes:    types,
			TruckSubtypes: subtypes,
			Amount:        l.Amount,
		})
	}

	return RequestTruckDTO{
		ID:           requestID,
		ContractorID: aggregate.ContractorID().Bytes(),
		ForemanID:    aggregate.ForemanID().Bytes(),
		GeneralJobID: generalJobID,
		Name:         details.Name(),
		StartDate:    details.StartDate(),
		EndDate:      details.EndDate(),
		Material:     details.Material(),
		Directions:   details.Directions(),
		PaymentDue:   details.PaymentDue(),
		LoadSite: SiteDTO{
			Address:   details.LoadSite().Address(),
			Latitude:  details.LoadSite().Point().Latitude(),
			Longitude: details.LoadSite().Point().Longitude(),
		},
		DumpSite: SiteDTO{
			Address:   details.DumpSite().Address(),
			Latitude:  details.DumpSite().Point().Latitude(),
			Longitude: details.DumpSite().Point().Longitude(),
		},
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		FulfilledAt: aggregate.FulfilledAt(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to a truck request domain aggregate.
func toDomain(dto RequestTruckDTO) (*requesttruck.RequestTruck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contractorID, err := kernel.UUIDFromBytes(dto.ContractorID[:])
	if err != nil {
		return nil, err
	}
	foremanID, err := kernel.UUIDFromBytes(dto.ForemanID[:])
	if err != nil {
		return nil, err
	}

	var generalJobID *kernel.UUID
	if dto.GeneralJobID != nil {
		gID, gErr := kernel.UUIDFromBytes((*dto.GeneralJobID)[:])
		if gErr != nil {
			return nil, gErr
		}
		generalJobID = &gID
	}

	details, err := detailsToDomain(dto)
	if err != nil {
		return nil, err
	}

	lines := make([]requesttruck.Line, 0, len(dto.Lines))
	for _, lDto := range dto.Lines {
		types := make([]truck.Type, 0, len(lDto.TruckTypes))
		for _, t := range lDto.TruckTypes {
			types = append(types, truck.Type(t))
		}
		subtypes := make([]truck.Subtype, 0, len(lDto.TruckSubtypes))
		for _, s := range lDto.TruckSubtypes {
			subtypes = append(subtypes, truck.Subtype(s))
		}
		lines = append(lines, requesttruck.Line{
			TruckTypes:    types,
			TruckSubtypes: subtypes,
			Amount:        lDto.Amount,
		})
	}

	return requesttruck.RestoreRequestTruck(id, contractorID, foremanID,
		generalJobID, details, lines, requesttruck.Status(dto.Status),
		dto.CreatedAt, dto.FulfilledAt)
}

func detailsToDomain(dto RequestTruckDTO) (job.Details, error) {
	loadSite, err := siteToDomain(dto.LoadSite)
	if err != nil {
		return job.Details{}, err
	}
	dumpSite, err := siteToDomain(dto.DumpSite)
	if err != nil {
		return job.Details{}, err
	}

	return job.NewDetails(dto.Name, dto.StartDate, dto.EndDate, dto.Material,
		dto.Directions, dto.PaymentDue, loadSite, dumpSite)
}

func siteToDomain(dto SiteDTO) (kernel.Site, error) {
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return kernel.Site{}, err
	}
	return kernel.NewSite(dto.Address, point)
}
