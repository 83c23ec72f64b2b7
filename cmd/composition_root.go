package cmd

import (
	"log/slog"

	"hauling/internal/adapters/in/http"
	"hauling/internal/adapters/out/billing"
	"hauling/internal/adapters/out/geo"
	"hauling/internal/adapters/out/notify"
	"hauling/internal/adapters/out/postgres"
	"hauling/internal/adapters/out/postgres/jobrepo"
	"hauling/internal/adapters/out/postgres/requesttruckrepo"
	"hauling/internal/adapters/out/postgres/schedulerepo"
	"hauling/internal/adapters/out/postgres/switchrepo"
	"hauling/internal/adapters/out/postgres/truckrepo"
	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/application/usecases/queries"
	"hauling/internal/core/ports"
	"hauling/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	notification ports.NotificationService
	billing      ports.BillingService
	geolocation  ports.GeolocationService
	logger       *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and an open
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		notification: notify.NewSlogNotificationService(logger),
		billing:      billing.NewSlogBillingService(logger),
		geolocation:  geo.NewHaversineGeolocationService(config.GeofenceRadiusMeters),
		logger:       logger,
	}
}

// MigrateDatabase creates or updates the engine's tables.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.TruckCategoryDTO{},
		&jobrepo.SlotDTO{},
		&jobrepo.OrderCounterDTO{},
		&schedulerepo.ScheduledJobDTO{},
		&schedulerepo.AssignationDTO{},
		&switchrepo.SwitchJobDTO{},
		&requesttruckrepo.RequestTruckDTO{},
		&requesttruckrepo.LineDTO{},
		&truckrepo.TruckDTO{},
	)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createJobUoWFactory() commands.CreateJobUoWFactory {
	return FuncCreateJobUoWFactory(func() commands.CreateJobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) scheduleUoWFactory() commands.ScheduleUoWFactory {
	return FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) scheduledJobUoWFactory() commands.ScheduledJobUoWFactory {
	return FuncScheduledJobUoWFactory(func() commands.ScheduledJobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) switchUoWFactory() commands.SwitchUoWFactory {
	return FuncSwitchUoWFactory(func() commands.SwitchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestTruckUoWFactory() commands.RequestTruckUoWFactory {
	return FuncRequestTruckUoWFactory(func() commands.RequestTruckUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.createJobUoWFactory())
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateDuplicateJobCommandHandler() commands.DuplicateJobCommandHandler {
	return commands.NewDuplicateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateHoldJobCommandHandler() commands.HoldJobCommandHandler {
	return commands.NewHoldJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateSwitchMaterialCommandHandler() commands.SwitchMaterialCommandHandler {
	return commands.NewSwitchMaterialCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateExtendFinishTimeCommandHandler() commands.ExtendFinishTimeCommandHandler {
	return commands.NewExtendFinishTimeCommandHandler(c.scheduledJobUoWFactory())
}

func (c *CompositionRoot) CreateScheduleJobCommandHandler() commands.ScheduleJobCommandHandler {
	return commands.NewScheduleJobCommandHandler(c.scheduleUoWFactory())
}

func (c *CompositionRoot) CreateEditAssignationCommandHandler() commands.EditAssignationCommandHandler {
	return commands.NewEditAssignationCommandHandler(c.scheduleUoWFactory())
}

func (c *CompositionRoot) CreateRemoveAssignationsCommandHandler() commands.RemoveAssignationsCommandHandler {
	return commands.NewRemoveAssignationsCommandHandler(c.scheduledJobUoWFactory())
}

func (c *CompositionRoot) CreateCancelPendingJobCommandHandler() commands.CancelPendingJobCommandHandler {
	return commands.NewCancelPendingJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCancelScheduledJobCommandHandler() commands.CancelScheduledJobCommandHandler {
	return commands.NewCancelScheduledJobCommandHandler(
		c.scheduledJobUoWFactory(), c.billing, c.notification)
}

func (c *CompositionRoot) CreateCancelTruckCommandHandler() commands.CancelTruckCommandHandler {
	return commands.NewCancelTruckCommandHandler(c.scheduledJobUoWFactory())
}

func (c *CompositionRoot) CreateClockInCommandHandler() commands.ClockInCommandHandler {
	return commands.NewClockInCommandHandler(c.scheduledJobUoWFactory(), c.geolocation)
}

func (c *CompositionRoot) CreateFinishAssignationCommandHandler() commands.FinishAssignationCommandHandler {
	return commands.NewFinishAssignationCommandHandler(c.scheduledJobUoWFactory(), c.billing)
}

func (c *CompositionRoot) CreateClockoutAssignationsCommandHandler() commands.ClockoutAssignationsCommandHandler {
	return commands.NewClockoutAssignationsCommandHandler(c.scheduledJobUoWFactory(), c.billing)
}

func (c *CompositionRoot) CreateFinishActiveJobCommandHandler() commands.FinishActiveJobCommandHandler {
	return commands.NewFinishActiveJobCommandHandler(c.scheduledJobUoWFactory(), c.billing)
}

func (c *CompositionRoot) CreateRequestSwitchCommandHandler() commands.RequestSwitchCommandHandler {
	return commands.NewRequestSwitchCommandHandler(c.switchUoWFactory(), c.notification)
}

func (c *CompositionRoot) CreateDecideSwitchCommandHandler() commands.DecideSwitchCommandHandler {
	return commands.NewDecideSwitchCommandHandler(c.switchUoWFactory(), c.notification, c.geolocation)
}

func (c *CompositionRoot) CreateDisputeScheduledJobCommandHandler() commands.DisputeScheduledJobCommandHandler {
	return commands.NewDisputeScheduledJobCommandHandler(c.scheduledJobUoWFactory(), c.notification)
}

func (c *CompositionRoot) CreateReviewDisputeCommandHandler() commands.ReviewDisputeCommandHandler {
	return commands.NewReviewDisputeCommandHandler(c.scheduledJobUoWFactory())
}

func (c *CompositionRoot) CreateCreateRequestTruckCommandHandler() commands.CreateRequestTruckCommandHandler {
	return commands.NewCreateRequestTruckCommandHandler(c.requestTruckUoWFactory())
}

func (c *CompositionRoot) CreateCloseRequestTruckCommandHandler() commands.CloseRequestTruckCommandHandler {
	return commands.NewCloseRequestTruckCommandHandler(c.requestTruckUoWFactory())
}

func (c *CompositionRoot) CreateZeroRateMissedJobsCommandHandler() commands.ZeroRateMissedJobsCommandHandler {
	return commands.NewZeroRateMissedJobsCommandHandler(c.scheduledJobUoWFactory(), c.billing)
}

func (c *CompositionRoot) CreateGetContractorJobsQueryHandler() queries.GetContractorJobsQueryHandler {
	return queries.NewGetContractorJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRequestTrucksQueryHandler() queries.GetPendingRequestTrucksQueryHandler {
	return queries.NewGetPendingRequestTrucksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindMissedJobsQueryHandler() queries.FindMissedJobsQueryHandler {
	return queries.NewFindMissedJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckSwitchQueryHandler() queries.CheckSwitchQueryHandler {
	return queries.NewCheckSwitchQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP surface needs.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateJob:            c.CreateCreateJobCommandHandler(),
		UpdateJob:            c.CreateUpdateJobCommandHandler(),
		DuplicateJob:         c.CreateDuplicateJobCommandHandler(),
		HoldJob:              c.CreateHoldJobCommandHandler(),
		SwitchMaterial:       c.CreateSwitchMaterialCommandHandler(),
		ExtendFinishTime:     c.CreateExtendFinishTimeCommandHandler(),
		ScheduleJob:          c.CreateScheduleJobCommandHandler(),
		EditAssignation:      c.CreateEditAssignationCommandHandler(),
		RemoveAssignations:   c.CreateRemoveAssignationsCommandHandler(),
		CancelPendingJob:     c.CreateCancelPendingJobCommandHandler(),
		CancelScheduledJob:   c.CreateCancelScheduledJobCommandHandler(),
		CancelTruck:          c.CreateCancelTruckCommandHandler(),
		ClockIn:              c.CreateClockInCommandHandler(),
		FinishAssignation:    c.CreateFinishAssignationCommandHandler(),
		ClockoutAssignations: c.CreateClockoutAssignationsCommandHandler(),
		FinishActiveJob:      c.CreateFinishActiveJobCommandHandler(),
		RequestSwitch:        c.CreateRequestSwitchCommandHandler(),
		DecideSwitch:         c.CreateDecideSwitchCommandHandler(),
		DisputeScheduledJob:  c.CreateDisputeScheduledJobCommandHandler(),
		ReviewDispute:        c.CreateReviewDisputeCommandHandler(),
		CreateRequestTruck:   c.CreateCreateRequestTruckCommandHandler(),
		CloseRequestTruck:    c.CreateCloseRequestTruckCommandHandler(),

		GetContractorJobs:       c.CreateGetContractorJobsQueryHandler(),
		GetPendingRequestTrucks: c.CreateGetPendingRequestTrucksQueryHandler(),
		FindMissedJobs:          c.CreateFindMissedJobsQueryHandler(),
		CheckSwitch:             c.CreateCheckSwitchQueryHandler(),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(sweepSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateZeroRateMissedJobsCommandHandler(), sweepSchedule, c.logger)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncCreateJobUoWFactory func() commands.CreateJobUoW

func (f FuncCreateJobUoWFactory) Create() commands.CreateJobUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncScheduledJobUoWFactory func() commands.ScheduledJobUoW

func (f FuncScheduledJobUoWFactory) Create() commands.ScheduledJobUoW {
	return f()
}

type FuncSwitchUoWFactory func() commands.SwitchUoW

func (f FuncSwitchUoWFactory) Create() commands.SwitchUoW {
	return f()
}

type FuncRequestTruckUoWFactory func() commands.RequestTruckUoW

func (f FuncRequestTruckUoWFactory) Create() commands.RequestTruckUoW {
	return f()
}
