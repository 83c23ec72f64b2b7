package commands_test

import (
	"testing"
	"time"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureRequestTruck(t *testing.T, contractorID kernel.UUID) *requesttruck.RequestTruck {
	t.Helper()
	lines := []requesttruck.Line{{TruckTypes: []truck.Type{truck.TypeDump}, Amount: 2}}
	request, err := requesttruck.NewRequestTruck(kernel.NewUUID(), contractorID, kernel.NewUUID(),
		nil, fixtureDetails(t), lines, time.Now().UTC())
	require.NoError(t, err)
	return request
}

func categoryInputs() []commands.CategoryInput {
	return []commands.CategoryInput{{
		TruckTypes: []truck.Type{truck.TypeDump},
		Amount:     2,
		PayBy:      job.PayByHour,
		Rates:      fixtureRates(1),
	}}
}

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)

	cmd, err := commands.NewCreateJobCommand(actor, kernel.NewUUID(), fixtureDetails(t),
		categoryInputs(), true, nil, nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("NextOrderNumber", ctx, contractorID).Return(42, nil).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	addCall := jobRepo.Calls[1]
	created := addCall.Arguments[1].(*job.Job)
	assert.Equal(t, 42, created.OrderNumber())
	assert.Equal(t, contractorID, created.ContractorID())
	assert.Equal(t, job.Pending, created.Status())
	assert.True(t, created.OnSite())
	require.Len(t, created.Categories(), 1)
	assert.Equal(t, 2, created.Categories()[0].OpenSlotCount())

	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_FulfillsRequestTruck(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)
	request := fixtureRequestTruck(t, contractorID)
	requestID := request.ID()

	cmd, err := commands.NewCreateJobCommand(actor, kernel.NewUUID(), fixtureDetails(t),
		categoryInputs(), false, nil, &requestID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	requestRepo := new(MockRequestTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("NextOrderNumber", ctx, contractorID).Return(7, nil).Once(),
		uow.On("RequestTruckRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForUpdate", ctx, requestID).Return(request, nil).Once(),
		requestRepo.On("Update", ctx, request).Return(nil).Once(),
		jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, requesttruck.Fulfilled, request.Status())
	assert.NotNil(t, request.FulfilledAt())
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_RequestAlreadyFulfilled(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)
	request := fixtureRequestTruck(t, contractorID)
	require.NoError(t, request.MarkFulfilled(time.Now().UTC()))
	requestID := request.ID()

	cmd, err := commands.NewCreateJobCommand(actor, kernel.NewUUID(), fixtureDetails(t),
		categoryInputs(), false, nil, &requestID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	requestRepo := new(MockRequestTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("NextOrderNumber", ctx, contractorID).Return(7, nil).Once(),
		uow.On("RequestTruckRepository").Return(requestRepo).Once(),
		requestRepo.On("GetForUpdate", ctx, requestID).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ConflictError{}, err)
	jobRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateJobCommandHandler_Handle_ActorWithoutContractor(t *testing.T) {
	ctx := t.Context()
	owner, err := account.NewActor(kernel.NewUUID(), account.RoleOwner, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCreateJobCommand(owner, kernel.NewUUID(), fixtureDetails(t),
		categoryInputs(), false, nil, nil)
	require.NoError(t, err)

	factory := new(MockCreateJobUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ForbiddenError{}, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateJobCommandHandler_Handle_DuplicateSignatures(t *testing.T) {
	ctx := t.Context()
	contractorID := kernel.NewUUID()
	actor := contractorActor(t, contractorID)

	inputs := append(categoryInputs(), categoryInputs()...)
	cmd, err := commands.NewCreateJobCommand(actor, kernel.NewUUID(), fixtureDetails(t),
		inputs, false, nil, nil)
	require.NoError(t, err)

	factory := new(MockCreateJobUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, job.ErrDuplicateCategorySignature)
	factory.AssertNotCalled(t, "Create")
}
