package commands_test

import (
	"testing"
	"time"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/model/switchjob"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// switchFixture wires an origin job with a clocked-in assignation, a
// destination job with one open slot, and the outstanding switch between them.
type switchFixture struct {
	truck          truck.Truck
	assignation    *schedule.Assignation
	originJob      *job.Job
	originSchedule *schedule.ScheduledJob
	destJob        *job.Job
	sw             *switchjob.SwitchJob
}

func newSwitchFixture(t *testing.T, destContractorID kernel.UUID, destSlots int) switchFixture {
	t.Helper()

	tr := fixtureTruck(t, truck.TypeDump, truck.SubtypeTandem)

	originCategory := fixtureCategory(t, 1, []truck.Type{truck.TypeDump})
	originJob := fixtureJob(t, kernel.NewUUID(), originCategory)

	categoryID := originCategory.ID()
	assignation, err := schedule.NewAssignation(kernel.NewUUID(), &categoryID, kernel.NewUUID(), tr.ID())
	require.NoError(t, err)
	require.NoError(t, originCategory.OccupySlot(assignation.ID()))

	originSchedule, err := schedule.NewScheduledJob(kernel.NewUUID(), originJob.ID())
	require.NoError(t, err)
	require.NoError(t, originSchedule.AddAssignation(assignation))
	require.NoError(t, originSchedule.ClockIn(assignation.ID(), time.Now().UTC(), true))

	destCategory := fixtureCategory(t, destSlots, []truck.Type{truck.TypeDump})
	destJob, err := job.NewJob(kernel.NewUUID(), destContractorID, 2,
		fixtureDetails(t), []*job.TruckCategory{destCategory}, nil)
	require.NoError(t, err)

	sw, err := switchjob.NewSwitchJob(kernel.NewUUID(), assignation.ID(), originSchedule.ID())
	require.NoError(t, err)
	require.NoError(t, sw.Request(destJob.ID()))

	return switchFixture{
		truck:          tr,
		assignation:    assignation,
		originJob:      originJob,
		originSchedule: originSchedule,
		destJob:        destJob,
		sw:             sw,
	}
}

func TestDecideSwitchCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), true, kernel.NewUUID(), nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)
	geolocation := new(MockGeolocationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetForUpdate", ctx, fx.originSchedule.ID()).Return(fx.originSchedule, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, fx.truck.ID()).Return(fx.truck, nil).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.originJob.ID()).Return(fx.originJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetByJob", ctx, fx.destJob.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		scheduledJobRepo.On("Update", ctx, fx.originSchedule).Return(nil).Once(),
		scheduledJobRepo.On("Add", ctx, mock.AnythingOfType("*schedule.ScheduledJob")).Return(nil).Once(),
		jobRepo.On("Update", ctx, fx.originJob).Return(nil).Once(),
		jobRepo.On("Update", ctx, fx.destJob).Return(nil).Once(),
		switchRepo.On("Update", ctx, fx.sw).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notification.On("NotifySwitchDecided", ctx, fx.sw.ID(), fx.assignation.DriverID(), true).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, geolocation)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, switchjob.Finished, fx.sw.Status())
	assert.Empty(t, fx.originSchedule.Assignations())
	assert.Equal(t, 1, fx.originJob.Categories()[0].OpenSlotCount())
	assert.Equal(t, 0, fx.destJob.Categories()[0].OpenSlotCount())
	assert.Equal(t, job.Scheduled, fx.destJob.Status())

	// the moved assignation keeps its clock and lands on the new schedule,
	// which starts immediately because the driver is mid-shift
	addCall := scheduledJobRepo.Calls[3]
	destSchedule := addCall.Arguments[1].(*schedule.ScheduledJob)
	require.Len(t, destSchedule.Assignations(), 1)
	assert.True(t, destSchedule.Assignations()[0].HasStarted())
	assert.Equal(t, schedule.Started, destSchedule.Status())

	switchRepo.AssertExpectations(t)
	scheduledJobRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	notification.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideSwitchCommandHandler_Handle_Deny(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), false, kernel.NewUUID(), nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetForUpdate", ctx, fx.originSchedule.ID()).Return(fx.originSchedule, nil).Once(),
		switchRepo.On("Update", ctx, fx.sw).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notification.On("NotifySwitchDecided", ctx, fx.sw.ID(), fx.assignation.DriverID(), false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, new(MockGeolocationService))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, switchjob.Denied, fx.sw.Status())
	// the original assignation is untouched
	assert.Len(t, fx.originSchedule.Assignations(), 1)
	assert.Equal(t, 0, fx.originJob.Categories()[0].OpenSlotCount())
	notification.AssertExpectations(t)
}

func TestDecideSwitchCommandHandler_Handle_SlotConsumed(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)

	// another truck took the destination slot between request and decision
	require.NoError(t, fx.destJob.Categories()[0].OccupySlot(kernel.NewUUID()))

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), true, kernel.NewUUID(), nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetForUpdate", ctx, fx.originSchedule.ID()).Return(fx.originSchedule, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, fx.truck.ID()).Return(fx.truck, nil).Once(),
		switchRepo.On("Update", ctx, fx.sw).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notification.On("NotifySwitchDecided", ctx, fx.sw.ID(), fx.assignation.DriverID(), false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, new(MockGeolocationService))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	assert.Contains(t, err.Error(), "slot no longer available")
	// the denial is recorded and the original assignation stays put
	assert.Equal(t, switchjob.Denied, fx.sw.Status())
	assert.Len(t, fx.originSchedule.Assignations(), 1)
	notification.AssertExpectations(t)
	switchRepo.AssertExpectations(t)
}

func TestDecideSwitchCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)
	require.NoError(t, fx.sw.Deny())

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), true, kernel.NewUUID(), nil)
	require.NoError(t, err)

	switchRepo := new(MockSwitchJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, new(MockGeolocationService))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notification.AssertNotCalled(t, "NotifySwitchDecided", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecideSwitchCommandHandler_Handle_AcceptInsideGeofence(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)

	position, err := kernel.NewGeoPoint(29.7604, -95.3698)
	require.NoError(t, err)

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), true, kernel.NewUUID(), &position)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)
	geolocation := new(MockGeolocationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetForUpdate", ctx, fx.originSchedule.ID()).Return(fx.originSchedule, nil).Once(),
		geolocation.On("IsInsideArea", ctx, fx.destJob.Details().LoadSite(), position).Return(true, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, fx.truck.ID()).Return(fx.truck, nil).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.originJob.ID()).Return(fx.originJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetByJob", ctx, fx.destJob.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		scheduledJobRepo.On("Update", ctx, fx.originSchedule).Return(nil).Once(),
		scheduledJobRepo.On("Add", ctx, mock.AnythingOfType("*schedule.ScheduledJob")).Return(nil).Once(),
		jobRepo.On("Update", ctx, fx.originJob).Return(nil).Once(),
		jobRepo.On("Update", ctx, fx.destJob).Return(nil).Once(),
		switchRepo.On("Update", ctx, fx.sw).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notification.On("NotifySwitchDecided", ctx, fx.sw.ID(), fx.assignation.DriverID(), true).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, geolocation)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, switchjob.Finished, fx.sw.Status())
	assert.Equal(t, job.Scheduled, fx.destJob.Status())
	geolocation.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideSwitchCommandHandler_Handle_AcceptOutsideGeofence(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newSwitchFixture(t, destContractorID, 1)

	position, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)

	cmd, err := commands.NewDecideSwitchCommand(actor, fx.sw.ID(), true, kernel.NewUUID(), &position)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)
	geolocation := new(MockGeolocationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		switchRepo.On("GetForUpdate", ctx, fx.sw.ID()).Return(fx.sw, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		scheduledJobRepo.On("GetForUpdate", ctx, fx.originSchedule.ID()).Return(fx.originSchedule, nil).Once(),
		geolocation.On("IsInsideArea", ctx, fx.destJob.Details().LoadSite(), position).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDecideSwitchCommandHandler(factory, notification, geolocation)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	assert.Contains(t, err.Error(), "driver is not at the destination site")
	// nothing moved and the switch is still open for a retry at the site
	assert.Equal(t, switchjob.Requested, fx.sw.Status())
	assert.Len(t, fx.originSchedule.Assignations(), 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notification.AssertNotCalled(t, "NotifySwitchDecided", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	geolocation.AssertExpectations(t)
}
