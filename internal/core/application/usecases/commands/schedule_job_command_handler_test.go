package commands_test

import (
	"testing"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)

	category := fixtureCategory(t, 2, []truck.Type{truck.TypeDump})
	aggregate := fixtureJob(t, contractorID, category)

	truck1 := fixtureTruck(t, truck.TypeDump, truck.SubtypeTandem)
	truck2 := fixtureTruck(t, truck.TypeDump, truck.SubtypeTriaxle)
	pairs := []commands.PairInput{
		{DriverID: kernel.NewUUID(), TruckID: truck1.ID()},
		{DriverID: kernel.NewUUID(), TruckID: truck2.ID()},
	}

	cmd, err := commands.NewScheduleJobCommand(actor, aggregate.ID(), kernel.NewUUID(), pairs)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, truck1.ID()).Return(truck1, nil).Once(),
		truckRepo.On("Get", ctx, truck2.ID()).Return(truck2, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Twice(),
		scheduledJobRepo.On("GetByJob", ctx, aggregate.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		scheduledJobRepo.On("Add", ctx, mock.AnythingOfType("*schedule.ScheduledJob")).Return(nil).Once(),
		jobRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.Scheduled, aggregate.Status())
	assert.Equal(t, 0, category.OpenSlotCount())

	addCall := scheduledJobRepo.Calls[1]
	created := addCall.Arguments[1].(*schedule.ScheduledJob)
	assert.Len(t, created.Assignations(), 2)
	assert.Equal(t, schedule.Pending, created.Status())

	jobRepo.AssertExpectations(t)
	scheduledJobRepo.AssertExpectations(t)
	truckRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestScheduleJobCommandHandler_Handle_BatchIsAllOrNothing(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)

	// one slot, two pairs: the second pair has nowhere to go
	category := fixtureCategory(t, 1, []truck.Type{truck.TypeDump})
	aggregate := fixtureJob(t, contractorID, category)

	truck1 := fixtureTruck(t, truck.TypeDump, truck.SubtypeTandem)
	truck2 := fixtureTruck(t, truck.TypeDump, truck.SubtypeTriaxle)
	pairs := []commands.PairInput{
		{DriverID: kernel.NewUUID(), TruckID: truck1.ID()},
		{DriverID: kernel.NewUUID(), TruckID: truck2.ID()},
	}

	cmd, err := commands.NewScheduleJobCommand(actor, aggregate.ID(), kernel.NewUUID(), pairs)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, truck1.ID()).Return(truck1, nil).Once(),
		truckRepo.On("Get", ctx, truck2.ID()).Return(truck2, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Twice(),
		scheduledJobRepo.On("GetByJob", ctx, aggregate.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	scheduledJobRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestScheduleJobCommandHandler_Handle_SlotRace(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)

	// the locked re-read shows the only slot already occupied
	category := fixtureCategory(t, 1, []truck.Type{truck.TypeDump})
	require.NoError(t, category.OccupySlot(kernel.NewUUID()))
	aggregate := fixtureJob(t, contractorID, category)

	tr := fixtureTruck(t, truck.TypeDump, truck.SubtypeTandem)
	pairs := []commands.PairInput{{DriverID: kernel.NewUUID(), TruckID: tr.ID()}}

	cmd, err := commands.NewScheduleJobCommand(actor, aggregate.ID(), kernel.NewUUID(), pairs)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, tr.ID()).Return(tr, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Twice(),
		scheduledJobRepo.On("GetByJob", ctx, aggregate.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestScheduleJobCommandHandler_Handle_ForeignContractor(t *testing.T) {
	ctx := t.Context()
	actor := contractorActor(t, kernel.NewUUID())

	category := fixtureCategory(t, 1, []truck.Type{truck.TypeDump})
	aggregate := fixtureJob(t, kernel.NewUUID(), category)

	pairs := []commands.PairInput{{DriverID: kernel.NewUUID(), TruckID: kernel.NewUUID()}}
	cmd, err := commands.NewScheduleJobCommand(actor, aggregate.ID(), kernel.NewUUID(), pairs)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ForbiddenError{}, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
