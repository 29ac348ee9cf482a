package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/returns"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinalizeSortingCommandHandler_Handle_GeneratesConditionForm(t *testing.T) {
	ctx := t.Context()
	order := inspectedReturn(t)
	cmd, err := commands.NewFinalizeSortingCommand(order.ID(), true)
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

	docNumbers := new(MockDocumentNumbers)
	docNumbers.On("NextConditionForm", mock.Anything).Return("RCF-0042", nil).Once()

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeSortingCommandHandler(factory, docNumbers)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, returns.SortingComplete, order.Status())
	require.NotNil(t, order.ConditionFormNumber())
	require.Equal(t, "RCF-0042", *order.ConditionFormNumber())
	require.False(t, order.ConditionFormSkipped())
	docNumbers.AssertExpectations(t)
}

func TestFinalizeSortingCommandHandler_Handle_SkipsConditionForm(t *testing.T) {
	ctx := t.Context()
	order := inspectedReturn(t)
	cmd, err := commands.NewFinalizeSortingCommand(order.ID(), false)
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

	docNumbers := new(MockDocumentNumbers)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeSortingCommandHandler(factory, docNumbers)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, returns.SortingComplete, order.Status())
	require.Nil(t, order.ConditionFormNumber())
	require.True(t, order.ConditionFormSkipped())
	docNumbers.AssertNotCalled(t, "NextConditionForm", mock.Anything)
}
