package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyOTPAndCompleteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	set := inTransitSet(t)
	challenge, err := otp.NewChallenge(set.ID(), "+60123456789")
	require.NoError(t, err)
	cmd, err := commands.NewVerifyOTPAndCompleteCommand(
		set.ID(), challenge.Code(), "Aina Binti Salleh", "sig-123")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, set.ID()).Return(set, nil).Once(),
		repo.On("Update", mock.Anything, set).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	challenges := new(MockChallengeStore)
	challenges.On("Get", mock.Anything, set.ID()).Return(challenge, nil).Once()
	challenges.On("Remove", mock.Anything, set.ID()).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOTPAndCompleteCommandHandler(factory, challenges)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.Completed, set.Status())
	require.True(t, set.OnRental())
	challenges.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestVerifyOTPAndCompleteCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	set := inTransitSet(t)
	challenge, err := otp.NewChallenge(set.ID(), "+60123456789")
	require.NoError(t, err)
	cmd, err := commands.NewVerifyOTPAndCompleteCommand(
		set.ID(), "wrong-code", "Aina Binti Salleh", "sig-123")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, set.ID()).Return(set, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	challenges := new(MockChallengeStore)
	challenges.On("Get", mock.Anything, set.ID()).Return(challenge, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOTPAndCompleteCommandHandler(factory, challenges)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, otp.ErrInvalidOTP)
	require.Equal(t, shipment.InTransit, set.Status())
	require.False(t, set.OnRental())
	challenges.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
