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

// requestSwitchFixture wires an origin job with two open assignations and a
// live destination job the drivers want to move to.
type requestSwitchFixture struct {
	assignations   []*schedule.Assignation
	originSchedule *schedule.ScheduledJob
	destJob        *job.Job
}

func newRequestSwitchFixture(t *testing.T, destContractorID kernel.UUID) requestSwitchFixture {
	t.Helper()

	originCategory := fixtureCategory(t, 2, []truck.Type{truck.TypeDump})
	originJob := fixtureJob(t, kernel.NewUUID(), originCategory)

	originSchedule, err := schedule.NewScheduledJob(kernel.NewUUID(), originJob.ID())
	require.NoError(t, err)

	categoryID := originCategory.ID()
	assignations := make([]*schedule.Assignation, 0, 2)
	for i := 0; i < 2; i++ {
		assignation, assignErr := schedule.NewAssignation(
			kernel.NewUUID(), &categoryID, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, assignErr)
		require.NoError(t, originCategory.OccupySlot(assignation.ID()))
		require.NoError(t, originSchedule.AddAssignation(assignation))
		assignations = append(assignations, assignation)
	}

	destJob := fixtureJob(t, destContractorID, fixtureCategory(t, 2, []truck.Type{truck.TypeDump}))

	return requestSwitchFixture{
		assignations:   assignations,
		originSchedule: originSchedule,
		destJob:        destJob,
	}
}

func TestRequestSwitchCommandHandler_Handle_Batch(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newRequestSwitchFixture(t, destContractorID)

	switches := []commands.SwitchInput{
		{SwitchID: kernel.NewUUID(), AssignationID: fx.assignations[0].ID()},
		{SwitchID: kernel.NewUUID(), AssignationID: fx.assignations[1].ID()},
	}
	cmd, err := commands.NewRequestSwitchCommand(actor, switches, fx.destJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		scheduledJobRepo.On("GetByAssignation", ctx, fx.assignations[0].ID()).Return(fx.originSchedule, nil).Once(),
		switchRepo.On("GetOutstandingByAssignation", ctx, fx.assignations[0].ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		switchRepo.On("Add", ctx, mock.AnythingOfType("*switchjob.SwitchJob")).Return(nil).Once(),
		scheduledJobRepo.On("GetByAssignation", ctx, fx.assignations[1].ID()).Return(fx.originSchedule, nil).Once(),
		switchRepo.On("GetOutstandingByAssignation", ctx, fx.assignations[1].ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		switchRepo.On("Add", ctx, mock.AnythingOfType("*switchjob.SwitchJob")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notification.On("NotifySwitchRequested", ctx, switches[0].SwitchID, destContractorID).Once(),
		notification.On("NotifySwitchRequested", ctx, switches[1].SwitchID, destContractorID).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestSwitchCommandHandler(factory, notification)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	for i, call := range []int{1, 3} {
		sw := switchRepo.Calls[call].Arguments[1].(*switchjob.SwitchJob)
		assert.Equal(t, switches[i].SwitchID, sw.ID())
		assert.Equal(t, switches[i].AssignationID, sw.AssignationID())
		assert.Equal(t, switchjob.Requested, sw.Status())
		require.NotNil(t, sw.FinalJobID())
		assert.Equal(t, fx.destJob.ID(), *sw.FinalJobID())
	}
	switchRepo.AssertExpectations(t)
	notification.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestSwitchCommandHandler_Handle_OutstandingAbortsBatch(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newRequestSwitchFixture(t, destContractorID)

	// the second assignation already has a pending switch, so nothing from
	// the batch may be committed
	pending, err := switchjob.NewSwitchJob(kernel.NewUUID(), fx.assignations[1].ID(), fx.originSchedule.ID())
	require.NoError(t, err)
	require.NoError(t, pending.Request(kernel.NewUUID()))

	switches := []commands.SwitchInput{
		{SwitchID: kernel.NewUUID(), AssignationID: fx.assignations[0].ID()},
		{SwitchID: kernel.NewUUID(), AssignationID: fx.assignations[1].ID()},
	}
	cmd, err := commands.NewRequestSwitchCommand(actor, switches, fx.destJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	scheduledJobRepo := new(MockScheduledJobRepository)
	switchRepo := new(MockSwitchJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("ScheduledJobRepository").Return(scheduledJobRepo).Once(),
		uow.On("SwitchJobRepository").Return(switchRepo).Once(),
		scheduledJobRepo.On("GetByAssignation", ctx, fx.assignations[0].ID()).Return(fx.originSchedule, nil).Once(),
		switchRepo.On("GetOutstandingByAssignation", ctx, fx.assignations[0].ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		switchRepo.On("Add", ctx, mock.AnythingOfType("*switchjob.SwitchJob")).Return(nil).Once(),
		scheduledJobRepo.On("GetByAssignation", ctx, fx.assignations[1].ID()).Return(fx.originSchedule, nil).Once(),
		switchRepo.On("GetOutstandingByAssignation", ctx, fx.assignations[1].ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestSwitchCommandHandler(factory, notification)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	assert.Contains(t, err.Error(), "switch already requested")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notification.AssertNotCalled(t, "NotifySwitchRequested", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRequestSwitchCommandHandler_Handle_TerminalDestination(t *testing.T) {
	ctx := t.Context()
	destContractorID := kernel.NewUUID()
	actor := contractorActor(t, destContractorID)
	fx := newRequestSwitchFixture(t, destContractorID)
	require.NoError(t, fx.destJob.Cancel(time.Now().UTC()))

	switches := []commands.SwitchInput{
		{SwitchID: kernel.NewUUID(), AssignationID: fx.assignations[0].ID()},
	}
	cmd, err := commands.NewRequestSwitchCommand(actor, switches, fx.destJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	notification := new(MockNotificationService)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, fx.destJob.ID()).Return(fx.destJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSwitchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestSwitchCommandHandler(factory, notification)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
