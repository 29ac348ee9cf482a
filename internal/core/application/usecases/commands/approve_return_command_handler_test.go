package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/returns"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveReturnCommandHandler_Handle_CourierBranch(t *testing.T) {
	ctx := t.Context()
	order := requestedReturn(t, returns.Courier)
	cmd, err := commands.NewApproveReturnCommand(
		order.ID(), time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), "14:00-17:00")
	require.NoError(t, err)

	repo := new(MockReturnRepository)
	uow := new(MockReturnUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, returns.PickupScheduled, order.Status())
	require.NotNil(t, order.Pickup())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveReturnCommandHandler_Handle_SelfReturnBranch(t *testing.T) {
	ctx := t.Context()
	order := requestedReturn(t, returns.SelfReturn)
	cmd, err := commands.NewApproveReturnCommand(order.ID(), time.Time{}, "")
	require.NoError(t, err)

	repo := new(MockReturnRepository)
	uow := new(MockReturnUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, returns.Approved, order.Status())
	require.Nil(t, order.Pickup())
}

func TestApproveReturnCommandHandler_Handle_CourierWithoutScheduleFails(t *testing.T) {
	ctx := t.Context()
	order := requestedReturn(t, returns.Courier)
	cmd, err := commands.NewApproveReturnCommand(order.ID(), time.Time{}, "")
	require.NoError(t, err)

	repo := new(MockReturnRepository)
	uow := new(MockReturnUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, returns.ErrMissingPickupSchedule)
	require.Equal(t, returns.Requested, order.Status())
}
