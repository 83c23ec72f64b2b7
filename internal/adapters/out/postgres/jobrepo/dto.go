// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. The job aggregate spans three tables: the job row, its
// truck category requirement lines, and the per-category slots whose
// occupancy binds assignations.
package jobrepo

import (
	"time"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobDTO represents the database structure for persisting job aggregates.
type JobDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderNumber  int        `gorm:"type:int;not null"`
	Name         *string    `gorm:"type:varchar(255)"`
	StartDate    time.Time  `gorm:"not null;index"`
	EndDate      time.Time  `gorm:"not null"`
	Material     string     `gorm:"type:varchar(255);not null"`
	Directions   string     `gorm:"type:text"`
	PaymentDue   time.Time
	LoadSite     SiteDTO    `gorm:"embedded;embeddedPrefix:load_"`
	DumpSite     SiteDTO    `gorm:"embedded;embeddedPrefix:dump_"`
	Status       int        `gorm:"type:int;not null;index"`
	OnHold       bool       `gorm:"not null"`
	OnSite       bool       `gorm:"not null"`
	GeneralJobID *uuid.UUID `gorm:"type:uuid;index"`
	FinishedAt   *time.Time
	CanceledAt   *time.Time
	PaidAt       *time.Time
	Categories   []TruckCategoryDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// SiteDTO represents an embedded load or dump location within the job table.
type SiteDTO struct {
	Address   string  `gorm:"type:varchar(512)"`
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// TruckCategoryDTO represents one requirement line of a job. The per-type
// rate lines are stored as parallel postgres arrays.
type TruckCategoryDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	JobID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"type:int;not null"`
	TruckTypes       pq.StringArray  `gorm:"type:text[];not null"`
	TruckSubtypes    pq.StringArray  `gorm:"type:text[]"`
	PayBy            string          `gorm:"type:varchar(16);not null"`
	Prices           pq.Float64Array `gorm:"type:double precision[];not null"`
	CustomerRates    pq.Float64Array `gorm:"type:double precision[];not null"`
	PartnerRates     pq.Float64Array `gorm:"type:double precision[];not null"`
	PreferredTruckID *uuid.UUID      `gorm:"type:uuid"`
	Slots            []SlotDTO       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for truck category entities.
func (TruckCategoryDTO) TableName() string {
	return "job_categories"
}

// SlotDTO represents one unit of a category's requested amount. A slot is
// either open or bound to exactly one assignation.
type SlotDTO struct {
	CategoryID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Position      int        `gorm:"type:int;primaryKey"`
	State         int        `gorm:"type:int;not null"`
	AssignationID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for slot entities.
func (SlotDTO) TableName() string {
	return "category_slots"
}

// OrderCounterDTO backs the per-contractor atomic order number sequence.
type OrderCounterDTO struct {
	ContractorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Counter      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order counters.
func (OrderCounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	jobID := aggregate.ID().Bytes()
	details := aggregate.Details()

	categories := make([]TruckCategoryDTO, 0, len(aggregate.Categories()))
	for i, c := range aggregate.Categories() {
		categories = append(categories, categoryFromDomain(jobID, i, c))
	}

	var generalJobID *uuid.UUID
	if id := aggregate.GeneralJobID(); id != nil {
		raw := id.Bytes()
		generalJobID = &raw
	}

	return JobDTO{
		ID:           jobID,
		ContractorID: aggregate.ContractorID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		Name:         details.Name(),
		StartDate:    details.StartDate(),
		EndDate:      details.EndDate(),
		Material:     details.Material(),
		Directions:   details.Directions(),
		PaymentDue:   details.PaymentDue(),
		LoadSite:     siteFromDomain(details.LoadSite()),
		DumpSite:     siteFromDomain(details.DumpSite()),
		Status:       int(aggregate.Status()),
		OnHold:       aggregate.OnHold(),
		OnSite:       aggregate.OnSite(),
		GeneralJobID: generalJobID,
		FinishedAt:   aggregate.FinishedAt(),
		CanceledAt:   aggregate.CanceledAt(),
		PaidAt:       aggregate.PaidAt(),
		Categories:   categories,
	}
}

func siteFromDomain(site kernel.Site) SiteDTO {
	return SiteDTO{
		Address:   site.Address(),
		Latitude:  site.Point().Latitude(),
		Longitude: site.Point().Longitude(),
	}
}

func categoryFromDomain(jobID uuid.UUID, position int, c *job.TruckCategory) TruckCategoryDTO {
	types := make(pq.StringArray, 0, len(c.TruckTypes()))
	for _, t := range c.TruckTypes() {
		types = append(types, string(t))
	}
	subtypes := make(pq.StringArray, 0, len(c.TruckSubtypes()))
	for _, s := range c.TruckSubtypes() {
		subtypes = append(subtypes, string(s))
	}

	var preferredTruckID *uuid.UUID
	if id := c.PreferredTruckID(); id != nil {
		raw := id.Bytes()
		preferredTruckID = &raw
	}

	categoryID := c.ID().Bytes()
	slots := make([]SlotDTO, 0, len(c.Slots()))
	for i, slot := range c.Slots() {
		var assignationID *uuid.UUID
		if slot.State() == job.SlotOccupied {
			raw := slot.AssignationID().Bytes()
			assignationID = &raw
		}
		slots = append(slots, SlotDTO{
			CategoryID:    categoryID,
			Position:      i,
			State:         int(slot.State()),
			AssignationID: assignationID,
		})
	}

	rates := c.Rates()
	return TruckCategoryDTO{
		ID:               categoryID,
		JobID:            jobID,
		Position:         position,
		TruckTypes:       types,
		TruckSubtypes:    subtypes,
		PayBy:            string(c.PayBy()),
		Prices:           pq.Float64Array(rates.Prices),
		CustomerRates:    pq.Float64Array(rates.CustomerRates),
		PartnerRates:     pq.Float64Array(rates.PartnerRates),
		PreferredTruckID: preferredTruckID,
		Slots:            slots,
	}
}

// toDomain converts a database DTO to a job domain aggregate.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contractorID, err := kernel.UUIDFromBytes(dto.ContractorID[:])
	if err != nil {
		return nil, err
	}

	details, err := detailsToDomain(dto)
	if err != nil {
		return nil, err
	}

	categories := make([]*job.TruckCategory, 0, len(dto.Categories))
	for _, cDto := range dto.Categories {
		c, cErr := categoryToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		categories = append(categories, c)
	}

	generalJobID, err := optionalUUID(dto.GeneralJobID)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, contractorID, dto.OrderNumber, details,
		job.Status(dto.Status), dto.OnHold, dto.OnSite, categories,
		generalJobID, dto.FinishedAt, dto.CanceledAt, dto.PaidAt)
}

func detailsToDomain(dto JobDTO) (job.Details, error) {
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

func categoryToDomain(dto TruckCategoryDTO) (*job.TruckCategory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	types := make([]truck.Type, 0, len(dto.TruckTypes))
	for _, t := range dto.TruckTypes {
		types = append(types, truck.Type(t))
	}
	subtypes := make([]truck.Subtype, 0, len(dto.TruckSubtypes))
	for _, s := range dto.TruckSubtypes {
		subtypes = append(subtypes, truck.Subtype(s))
	}

	preferredTruckID, err := optionalUUID(dto.PreferredTruckID)
	if err != nil {
		return nil, err
	}

	slots := make([]job.Slot, 0, len(dto.Slots))
	for _, sDto := range dto.Slots {
		slot, sErr := slotToDomain(sDto)
		if sErr != nil {
			return nil, sErr
		}
		slots = append(slots, slot)
	}

	return job.RestoreTruckCategory(id, types, subtypes, job.PayBy(dto.PayBy),
		job.Rates{
			Prices:        dto.Prices,
			CustomerRates: dto.CustomerRates,
			PartnerRates:  dto.PartnerRates,
		}, preferredTruckID, slots)
}

func slotToDomain(dto SlotDTO) (job.Slot, error) {
	var assignationID kernel.UUID
	if dto.AssignationID != nil {
		id, err := kernel.UUIDFromBytes((*dto.AssignationID)[:])
		if err != nil {
			return job.Slot{}, err
		}
		assignationID = id
	}
	return job.RestoreSlot(job.SlotState(dto.State), assignationID)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
