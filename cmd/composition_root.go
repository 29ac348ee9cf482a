package cmd

import (
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/docnumbers"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/stocklevels"
	"fulfillment/internal/adapters/out/postgres/viewrepo"
	"fulfillment/internal/adapters/out/redis/otpstore"
	"fulfillment/internal/adapters/out/webhook"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. It owns the
// shared infrastructure clients and hands out freshly composed handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	docNumbers ports.DocumentNumbers
	stock      ports.StockLevels
	views      ports.DeliveryOrderViews
	challenges ports.ChallengeStore
	notifier   ports.NotificationClient
}

// NewCompositionRoot creates the composition root from the process
// configuration and the shared infrastructure clients.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *goredis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		docNumbers: docnumbers.NewGormDocumentNumbers(gormDB),
		stock:      stocklevels.NewGormStockLevels(gormDB),
		views:      viewrepo.NewGormDeliveryOrderViews(gormDB),
		challenges: otpstore.NewRedisChallengeStore(redisClient),
		notifier:   webhook.NewNotificationClient(config.NotifyGatewayURL),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) returnUoWFactory() commands.ReturnUoWFactory {
	return FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers composes the full handler bundle the HTTP server
// dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateFulfillmentSet:  commands.NewCreateFulfillmentSetCommandHandler(c.shipmentUoWFactory()),
		QuoteFulfillmentSet:   commands.NewQuoteFulfillmentSetCommandHandler(c.shipmentUoWFactory(), services.NewSequentialGate()),
		ConfirmFulfillmentSet: commands.NewConfirmFulfillmentSetCommandHandler(c.shipmentUoWFactory()),
		GenerateDeliveryOrder: commands.NewGenerateDeliveryOrderCommandHandler(c.shipmentUoWFactory(), c.docNumbers, services.NewSequentialGate()),
		IssuePackingList:      commands.NewIssuePackingListCommandHandler(c.shipmentUoWFactory(), c.docNumbers),
		CheckStock:            commands.NewCheckStockCommandHandler(c.shipmentUoWFactory(), c.stock),
		StartPacking:          commands.NewStartPackingCommandHandler(c.shipmentUoWFactory()),
		CompleteLoading:       commands.NewCompleteLoadingCommandHandler(c.shipmentUoWFactory()),
		SendOTP:               commands.NewSendOTPCommandHandler(c.shipmentUoWFactory(), c.challenges, c.notifier),
		VerifyOTPAndComplete:  commands.NewVerifyOTPAndCompleteCommandHandler(c.shipmentUoWFactory(), c.challenges),

		CreateReturnOrder:    commands.NewCreateReturnOrderCommandHandler(c.returnUoWFactory()),
		ApproveReturn:        commands.NewApproveReturnCommandHandler(c.returnUoWFactory()),
		ConfirmPickup:        commands.NewConfirmPickupCommandHandler(c.returnUoWFactory()),
		RecordAtOrigin:       commands.NewRecordAtOriginCommandHandler(c.returnUoWFactory()),
		ReceiveAtWarehouse:   commands.NewReceiveAtWarehouseCommandHandler(c.returnUoWFactory()),
		CompleteInspection:   commands.NewCompleteInspectionCommandHandler(c.returnUoWFactory(), c.docNumbers),
		RaiseDispute:         commands.NewRaiseDisputeCommandHandler(c.returnUoWFactory()),
		FinalizeSorting:      commands.NewFinalizeSortingCommandHandler(c.returnUoWFactory(), c.docNumbers),
		NotifyReturnCustomer: commands.NewNotifyReturnCustomerCommandHandler(c.returnUoWFactory(), c.notifier),
		CompleteReturn:       commands.NewCompleteReturnCommandHandler(c.returnUoWFactory()),

		GetDeliveryOrder:    c.CreateGetDeliveryOrderQueryHandler(),
		GetPendingShipments: queries.NewGetPendingShipmentsQueryHandler(c.gormDB),
		GetActiveReturns:    queries.NewGetActiveReturnsQueryHandler(c.gormDB),
	}
}

// CreateGetDeliveryOrderQueryHandler composes the live delivery-order view
// query over a read-only repository.
func (c *CompositionRoot) CreateGetDeliveryOrderQueryHandler() queries.GetDeliveryOrderQueryHandler {
	repo := shipmentrepo.NewGormShipmentRepository(c.gormDB, postgres.NewReadOnlyTracker())
	return queries.NewGetDeliveryOrderQueryHandler(repo, services.NewOrderAggregator())
}

// CreateRefreshDeliveryOrderViewsCommandHandler composes the handler the
// view refresh job drives.
func (c *CompositionRoot) CreateRefreshDeliveryOrderViewsCommandHandler() commands.RefreshDeliveryOrderViewsCommandHandler {
	return commands.NewRefreshDeliveryOrderViewsCommandHandler(
		c.shipmentUoWFactory(),
		services.NewOrderAggregator(),
		c.views,
	)
}

// FuncShipmentUoWFactory adapts a function to commands.ShipmentUoWFactory.
type FuncShipmentUoWFactory func() commands.ShipmentUoW

// Create invokes the wrapped function.
func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

// FuncReturnUoWFactory adapts a function to commands.ReturnUoWFactory.
type FuncReturnUoWFactory func() commands.ReturnUoW

// Create invokes the wrapped function.
func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}
