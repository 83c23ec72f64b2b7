package commands_test

import (
	"context"
	"testing"
	"time"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/model/switchjob"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) NextOrderNumber(ctx context.Context, contractorID kernel.UUID) (int, error) {
	args := m.Called(ctx, contractorID)
	return args.Int(0), args.Error(1)
}

type MockScheduledJobRepository struct{ mock.Mock }

func (m *MockScheduledJobRepository) Add(ctx context.Context, aggregate *schedule.ScheduledJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduledJobRepository) Update(ctx context.Context, aggregate *schedule.ScheduledJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduledJobRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.ScheduledJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ScheduledJob), args.Error(1)
}

func (m *MockScheduledJobRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*schedule.ScheduledJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ScheduledJob), args.Error(1)
}

func (m *MockScheduledJobRepository) GetByJob(
	ctx context.Context,
	jobID kernel.UUID,
) (*schedule.ScheduledJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ScheduledJob), args.Error(1)
}

func (m *MockScheduledJobRepository) GetByAssignation(
	ctx context.Context,
	assignationID kernel.UUID,
) (*schedule.ScheduledJob, error) {
	args := m.Called(ctx, assignationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ScheduledJob), args.Error(1)
}

func (m *MockScheduledJobRepository) GetAllMissed(
	ctx context.Context,
	cutoff time.Time,
) ([]*schedule.ScheduledJob, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.ScheduledJob), args.Error(1)
}

type MockSwitchJobRepository struct{ mock.Mock }

func (m *MockSwitchJobRepository) Add(ctx context.Context, aggregate *switchjob.SwitchJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSwitchJobRepository) Update(ctx context.Context, aggregate *switchjob.SwitchJob) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSwitchJobRepository) Get(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*switchjob.SwitchJob), args.Error(1)
}

func (m *MockSwitchJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*switchjob.SwitchJob), args.Error(1)
}

func (m *MockSwitchJobRepository) GetOutstandingByAssignation(
	ctx context.Context,
	assignationID kernel.UUID,
) (*switchjob.SwitchJob, error) {
	args := m.Called(ctx, assignationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*switchjob.SwitchJob), args.Error(1)
}

type MockRequestTruckRepository struct{ mock.Mock }

func (m *MockRequestTruckRepository) Add(ctx context.Context, aggregate *requesttruck.RequestTruck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestTruckRepository) Update(ctx context.Context, aggregate *requesttruck.RequestTruck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestTruckRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*requesttruck.RequestTruck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requesttruck.RequestTruck), args.Error(1)
}

func (m *MockRequestTruckRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*requesttruck.RequestTruck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requesttruck.RequestTruck), args.Error(1)
}

func (m *MockRequestTruckRepository) GetAllPending(ctx context.Context) ([]*requesttruck.RequestTruck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requesttruck.RequestTruck), args.Error(1)
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (truck.Truck, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context, ids []kernel.UUID) ([]truck.Truck, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]truck.Truck), args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) NotifySwitchRequested(ctx context.Context, switchID, contractorID kernel.UUID) {
	m.Called(ctx, switchID, contractorID)
}

func (m *MockNotificationService) NotifySwitchDecided(
	ctx context.Context,
	switchID, driverID kernel.UUID,
	accepted bool,
) {
	m.Called(ctx, switchID, driverID, accepted)
}

func (m *MockNotificationService) NotifyJobCanceled(ctx context.Context, jobID kernel.UUID, driverIDs []kernel.UUID) {
	m.Called(ctx, jobID, driverIDs)
}

func (m *MockNotificationService) NotifyDisputeRaised(ctx context.Context, scheduledJobID kernel.UUID, message string) {
	m.Called(ctx, scheduledJobID, message)
}

type MockBillingService struct{ mock.Mock }

func (m *MockBillingService) ReportFinished(ctx context.Context, scheduledJobID kernel.UUID) error {
	args := m.Called(ctx, scheduledJobID)
	return args.Error(0)
}

func (m *MockBillingService) ReportCanceled(ctx context.Context, scheduledJobID kernel.UUID, byOwner bool) error {
	args := m.Called(ctx, scheduledJobID, byOwner)
	return args.Error(0)
}

func (m *MockBillingService) ReportZeroRated(ctx context.Context, scheduledJobID kernel.UUID) error {
	args := m.Called(ctx, scheduledJobID)
	return args.Error(0)
}

type MockGeolocationService struct{ mock.Mock }

func (m *MockGeolocationService) IsInsideArea(
	ctx context.Context,
	site kernel.Site,
	position kernel.GeoPoint,
) (bool, error) {
	args := m.Called(ctx, site, position)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work variant of the package, so one mock
// serves all handler tests. Handlers only request the repositories their
// interface names.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) ScheduledJobRepository() ports.ScheduledJobRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduledJobRepository)
}

func (m *MockUoW) SwitchJobRepository() ports.SwitchJobRepository {
	args := m.Called()
	return args.Get(0).(ports.SwitchJobRepository)
}

func (m *MockUoW) RequestTruckRepository() ports.RequestTruckRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestTruckRepository)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockCreateJobUoWFactory struct{ mock.Mock }

func (m *MockCreateJobUoWFactory) Create() commands.CreateJobUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateJobUoW)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockScheduledJobUoWFactory struct{ mock.Mock }

func (m *MockScheduledJobUoWFactory) Create() commands.ScheduledJobUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduledJobUoW)
}

type MockSwitchUoWFactory struct{ mock.Mock }

func (m *MockSwitchUoWFactory) Create() commands.SwitchUoW {
	args := m.Called()
	return args.Get(0).(commands.SwitchUoW)
}

type MockRequestTruckUoWFactory struct{ mock.Mock }

func (m *MockRequestTruckUoWFactory) Create() commands.RequestTruckUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestTruckUoW)
}

// Shared fixtures.

func contractorActor(t *testing.T, contractorID kernel.UUID) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), account.RoleDispatcher, &contractorID)
	require.NoError(t, err)
	return actor
}

func foremanActor(t *testing.T, contractorID kernel.UUID) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), account.RoleForeman, &contractorID)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin, nil)
	require.NoError(t, err)
	return actor
}

func fixtureRates(typeCount int) job.Rates {
	rates := make([]float64, typeCount)
	for i := range rates {
		rates[i] = 100
	}
	return job.Rates{Prices: rates, CustomerRates: rates, PartnerRates: rates}
}

func fixtureDetails(t *testing.T) job.Details {
	t.Helper()
	point, err := kernel.NewGeoPoint(33.75, -117.85)
	require.NoError(t, err)
	loadSite, err := kernel.NewSite("100 Quarry Rd", point)
	require.NoError(t, err)
	dumpSite, err := kernel.NewSite("200 Fill Ave", point)
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	details, err := job.NewDetails(nil, start, start.Add(10*time.Hour),
		"gravel", "gate code 4411", start.Add(30*24*time.Hour), loadSite, dumpSite)
	require.NoError(t, err)
	return details
}

func fixtureCategory(t *testing.T, amount int, types []truck.Type) *job.TruckCategory {
	t.Helper()
	category, err := job.NewTruckCategory(kernel.NewUUID(), types, nil,
		amount, job.PayByHour, fixtureRates(len(types)), nil)
	require.NoError(t, err)
	return category
}

func fixtureJob(t *testing.T, contractorID kernel.UUID, categories ...*job.TruckCategory) *job.Job {
	t.Helper()
	aggregate, err := job.NewJob(kernel.NewUUID(), contractorID, 1,
		fixtureDetails(t), categories, nil)
	require.NoError(t, err)
	return aggregate
}

func fixtureTruck(t *testing.T, typ truck.Type, subtype truck.Subtype) truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), typ, subtype)
	require.NoError(t, err)
	return tr
}
