package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.FulfillmentSet) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.FulfillmentSet) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.FulfillmentSet, error) {
	args := m.Called(ctx, id)
	if set := args.Get(0); set != nil {
		return set.(*shipment.FulfillmentSet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetByRequest(ctx context.Context, requestID kernel.UUID) ([]*shipment.FulfillmentSet, error) {
	args := m.Called(ctx, requestID)
	if sets := args.Get(0); sets != nil {
		return sets.([]*shipment.FulfillmentSet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetByDeliveryOrder(ctx context.Context, doNumber string) ([]*shipment.FulfillmentSet, error) {
	args := m.Called(ctx, doNumber)
	if sets := args.Get(0); sets != nil {
		return sets.([]*shipment.FulfillmentSet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) GetAllWithDeliveryOrder(ctx context.Context) ([]*shipment.FulfillmentSet, error) {
	args := m.Called(ctx)
	if sets := args.Get(0); sets != nil {
		return sets.([]*shipment.FulfillmentSet), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, o *returns.ReturnOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockReturnRepository) Update(ctx context.Context, o *returns.ReturnOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.ReturnOrder, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*returns.ReturnOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReturnRepository) GetAllActive(ctx context.Context) ([]*returns.ReturnOrder, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*returns.ReturnOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockReturnUoW struct{ mock.Mock }

func (m *MockReturnUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReturnUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockChallengeStore struct{ mock.Mock }

func (m *MockChallengeStore) Put(ctx context.Context, challenge otp.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeStore) Get(ctx context.Context, unitID kernel.UUID) (otp.Challenge, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(otp.Challenge), args.Error(1)
}

func (m *MockChallengeStore) Remove(ctx context.Context, unitID kernel.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) SendOTPMessage(ctx context.Context, recipient, code, unitLabel string) error {
	args := m.Called(ctx, recipient, code, unitLabel)
	return args.Error(0)
}

func (m *MockNotificationClient) SendCustomerUpdate(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type MockDocumentNumbers struct{ mock.Mock }

func (m *MockDocumentNumbers) NextPackingList(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentNumbers) NextDeliveryOrder(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentNumbers) NextGoodsReceipt(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentNumbers) NextConditionForm(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockStockLevels struct{ mock.Mock }

func (m *MockStockLevels) Levels(ctx context.Context, itemNames []string) (map[string]int, error) {
	args := m.Called(ctx, itemNames)
	if levels := args.Get(0); levels != nil {
		return levels.(map[string]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryOrderViews struct{ mock.Mock }

func (m *MockDeliveryOrderViews) Replace(ctx context.Context, views []services.DeliveryOrderView) error {
	args := m.Called(ctx, views)
	return args.Error(0)
}
