package schedulerepo_test

import (
	"context"
	"testing"
	"time"

	"hauling/internal/adapters/out/postgres/jobrepo"
	"hauling/internal/adapters/out/postgres/schedulerepo"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ScheduledJobRepositoryIntegrationTestSuite provides integration tests for
// ScheduledJobRepository using PostgreSQL containers. The missed-job sweep
// query joins the jobs table, so job rows are seeded through the job
// repository.
type ScheduledJobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *schedulerepo.GormScheduledJobRepository
	jobs       *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.TruckCategoryDTO{},
		&jobrepo.SlotDTO{},
		&schedulerepo.ScheduledJobDTO{},
		&schedulerepo.AssignationDTO{},
	))
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE scheduled_jobs CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = schedulerepo.NewGormScheduledJobRepository(suite.db, suite.tracker)
	suite.jobs = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAssignations() {
	ctx := context.Background()

	seededJob := suite.seedJob(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	scheduledJob, assignation := suite.createScheduledJob(seededJob)

	suite.Require().NoError(suite.repository.Add(ctx, scheduledJob))

	retrieved, err := suite.repository.Get(ctx, scheduledJob.ID())
	suite.Require().NoError(err)

	suite.Equal(scheduledJob.ID(), retrieved.ID())
	suite.Equal(seededJob.ID(), retrieved.JobID())
	suite.Equal(schedule.Pending, retrieved.Status())
	suite.False(retrieved.Disputed())
	suite.False(retrieved.ZeroRated())

	suite.Require().Len(retrieved.Assignations(), 1)
	got := retrieved.Assignations()[0]
	suite.Equal(assignation.ID(), got.ID())
	suite.Equal(assignation.DriverID(), got.DriverID())
	suite.Equal(assignation.TruckID(), got.TruckID())
	suite.Require().NotNil(got.CategoryID())
	suite.Equal(*assignation.CategoryID(), *got.CategoryID())
	suite.False(got.HasStarted())
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TestGetByAssignation_FindsHolder() {
	ctx := context.Background()

	seededJob := suite.seedJob(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	scheduledJob, assignation := suite.createScheduledJob(seededJob)
	suite.Require().NoError(suite.repository.Add(ctx, scheduledJob))

	retrieved, err := suite.repository.GetByAssignation(ctx, assignation.ID())
	suite.Require().NoError(err)
	suite.Equal(scheduledJob.ID(), retrieved.ID())

	_, err = suite.repository.GetByAssignation(ctx, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TestGetByJob_SkipsFinishedInstances() {
	ctx := context.Background()

	seededJob := suite.seedJob(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))

	// A canceled instance must not count as live.
	canceled, _ := suite.createScheduledJob(seededJob)
	suite.Require().NoError(canceled.Cancel(time.Now().UTC(), false))
	suite.Require().NoError(suite.repository.Add(ctx, canceled))

	_, err := suite.repository.GetByJob(ctx, seededJob.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	live, _ := suite.createScheduledJob(seededJob)
	suite.Require().NoError(suite.repository.Add(ctx, live))

	retrieved, err := suite.repository.GetByJob(ctx, seededJob.ID())
	suite.Require().NoError(err)
	suite.Equal(live.ID(), retrieved.ID())
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TestUpdate_DetachedAssignationsDoNotLinger() {
	ctx := context.Background()

	seededJob := suite.seedJob(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	scheduledJob, assignation := suite.createScheduledJob(seededJob)
	suite.Require().NoError(suite.repository.Add(ctx, scheduledJob))

	_, err := suite.repository.GetByAssignation(ctx, assignation.ID())
	suite.Require().NoError(err)

	_, err = scheduledJob.DetachAssignation(assignation.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, scheduledJob))

	retrieved, err := suite.repository.Get(ctx, scheduledJob.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Assignations())

	_, err = suite.repository.GetByAssignation(ctx, assignation.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ScheduledJobRepositoryIntegrationTestSuite) TestGetAllMissed_FiltersByCutoffStatusAndSweepFlag() {
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	// Pending and past the cutoff: swept.
	missedJob := suite.seedJob(cutoff.Add(-48 * time.Hour))
	missed, _ := suite.createScheduledJob(missedJob)
	suite.Require().NoError(suite.repository.Add(ctx, missed))

	// Pending but starting after the cutoff: left alone.
	futureJob := suite.seedJob(cutoff.Add(24 * time.Hour))
	future, _ := suite.createScheduledJob(futureJob)
	suite.Require().NoError(suite.repository.Add(ctx, future))

	// Past the cutoff but already started: not missed.
	startedJob := suite.seedJob(cutoff.Add(-24 * time.Hour))
	started, startedAssignation := suite.createScheduledJob(startedJob)
	suite.Require().NoError(started.ClockIn(startedAssignation.ID(), cutoff.Add(-23*time.Hour), true))
	suite.Require().NoError(suite.repository.Add(ctx, started))

	// Already zero-rated by a previous sweep: not returned again.
	sweptJob := suite.seedJob(cutoff.Add(-72 * time.Hour))
	swept, _ := suite.createScheduledJob(sweptJob)
	suite.Require().NoError(swept.ZeroRate())
	suite.Require().NoError(suite.repository.Add(ctx, swept))

	missedJobs, err := suite.repository.GetAllMissed(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(missedJobs, 1)
	suite.Equal(missed.ID(), missedJobs[0].ID())
}

// seedJob persists a one-slot job starting at the given time and returns it.
func (suite *ScheduledJobRepositoryIntegrationTestSuite) seedJob(start time.Time) *job.Job {
	loadPoint, err := kernel.NewGeoPoint(33.75, -117.85)
	suite.Require().NoError(err)
	loadSite, err := kernel.NewSite("100 Quarry Rd", loadPoint)
	suite.Require().NoError(err)

	dumpPoint, err := kernel.NewGeoPoint(33.68, -117.82)
	suite.Require().NoError(err)
	dumpSite, err := kernel.NewSite("200 Fill Ave", dumpPoint)
	suite.Require().NoError(err)

	details, err := job.NewDetails(nil, start, start.Add(8*time.Hour),
		"gravel", "", start.Add(30*24*time.Hour), loadSite, dumpSite)
	suite.Require().NoError(err)

	line := []float64{100}
	category, err := job.NewTruckCategory(kernel.NewUUID(),
		[]truck.Type{truck.TypeDump}, []truck.Subtype{truck.SubtypeTandem},
		1, job.PayByHour,
		job.Rates{Prices: line, CustomerRates: line, PartnerRates: line}, nil)
	suite.Require().NoError(err)

	seededJob, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), 1,
		details, []*job.TruckCategory{category}, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.jobs.Add(context.Background(), seededJob))
	return seededJob
}

// createScheduledJob builds a Pending scheduled job for the given job with
// one not-yet-started assignation bound to its first category.
func (suite *ScheduledJobRepositoryIntegrationTestSuite) createScheduledJob(
	seededJob *job.Job,
) (*schedule.ScheduledJob, *schedule.Assignation) {
	scheduledJob, err := schedule.NewScheduledJob(kernel.NewUUID(), seededJob.ID())
	suite.Require().NoError(err)

	categoryID := seededJob.Categories()[0].ID()
	assignation, err := schedule.NewAssignation(kernel.NewUUID(), &categoryID,
		kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(scheduledJob.AddAssignation(assignation))

	return scheduledJob, assignation
}

func TestScheduledJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduledJobRepositoryIntegrationTestSuite))
}
