package returnrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/returnrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingTracker struct {
	tracked  []kernel.UUID
	versions map[kernel.UUID]int
}

func newRecordingTracker() *recordingTracker {
	return &recordingTracker{versions: make(map[kernel.UUID]int)}
}

func (t *recordingTracker) TrackAggregate(id kernel.UUID, _ any) {
	t.tracked = append(t.tracked, id)
}

func (t *recordingTracker) RecordLoadedVersion(id kernel.UUID, version int) {
	t.versions[id] = version
}

func (t *recordingTracker) LoadedVersion(id kernel.UUID) (int, bool) {
	version, ok := t.versions[id]
	return version, ok
}

// ReturnRepositoryIntegrationTestSuite provides integration tests for
// ReturnRepository using PostgreSQL containers.
type ReturnRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *returnrepo.GormReturnRepository
	tracker    *recordingTracker
}

func (suite *ReturnRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&returnrepo.ReturnOrderDTO{}))
}

func (suite *ReturnRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE return_orders").Error)

	suite.tracker = newRecordingTracker()
	suite.repository = returnrepo.NewGormReturnRepository(suite.db, suite.tracker)
}

func (suite *ReturnRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReturnRepositoryIntegrationTestSuite) createTestOrder(
	method returns.CollectionMethod,
) *returns.ReturnOrder {
	item, err := returns.NewReturnItem(kernel.NewUUID(), "Steel Prop", "Props", 20)
	suite.Require().NoError(err)

	order, err := returns.NewReturnOrder(
		kernel.NewUUID(),
		returns.Customer{Name: "Lim Ah Kow", Contact: "+60123456789"},
		"RO-2026-081",
		returns.FullReturn,
		method,
		[]returns.ReturnItem{item},
	)
	suite.Require().NoError(err)
	return order
}

func (suite *ReturnRepositoryIntegrationTestSuite) progressToInspected(order *returns.ReturnOrder) {
	suite.Require().NoError(order.ApproveAndSchedule(
		time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), "14:00-17:00"))
	suite.Require().NoError(order.ConfirmPickup("Rahim", "+60198765432"))
	suite.Require().NoError(order.RecordAtOrigin([]string{"origin-1.jpg"}))
	suite.Require().NoError(order.ReceiveAtWarehouse([]string{"receipt-1.jpg"}))

	assessments := make(map[kernel.UUID]returns.Assessment)
	for _, item := range order.Items() {
		assessments[item.ID()] = returns.Assessment{
			Condition:        returns.Damaged,
			ReturnedQuantity: 18,
			Notes:            "two props bent",
		}
	}
	suite.Require().NoError(order.CompleteInspection("GRN-0007", assessments, "partial damage", false))
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	order := suite.createTestOrder(returns.SelfReturn)

	err := suite.repository.Add(ctx, order)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&returnrepo.ReturnOrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.Contains(suite.tracker.tracked, order.ID())
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestGet_RoundTripsCourierWorkflowState() {
	ctx := context.Background()
	order := suite.createTestOrder(returns.Courier)
	suite.progressToInspected(order)

	suite.Require().NoError(suite.repository.Add(ctx, order))

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)

	suite.Equal(order.ID(), retrieved.ID())
	suite.Equal(returns.UnderInspection, retrieved.Status())
	suite.Equal(returns.Courier, retrieved.CollectionMethod())
	suite.Equal("Lim Ah Kow", retrieved.Customer().Name)

	suite.Require().NotNil(retrieved.Pickup())
	suite.Equal("14:00-17:00", retrieved.Pickup().TimeSlot)
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal("Rahim", retrieved.Driver().Name)
	suite.Require().NotNil(retrieved.GoodsReceiptNumber())
	suite.Equal("GRN-0007", *retrieved.GoodsReceiptNumber())
	suite.Require().NotNil(retrieved.Inspection())
	suite.Equal([]string{"origin-1.jpg"}, retrieved.OriginPhotos())
	suite.Require().NotNil(retrieved.ReceivedAt())

	items := retrieved.Items()
	suite.Require().Len(items, 1)
	suite.Equal(returns.Damaged, items[0].Condition())
	suite.Equal(18, items[0].ReturnedQuantity())
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestUpdate_ConcurrentModification_ReturnsVersionConflict() {
	ctx := context.Background()
	order := suite.createTestOrder(returns.SelfReturn)
	suite.Require().NoError(suite.repository.Add(ctx, order))

	firstTracker := newRecordingTracker()
	first := returnrepo.NewGormReturnRepository(suite.db, firstTracker)
	firstCopy, err := first.Get(ctx, order.ID())
	suite.Require().NoError(err)

	secondTracker := newRecordingTracker()
	second := returnrepo.NewGormReturnRepository(suite.db, secondTracker)
	secondCopy, err := second.Get(ctx, order.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.ApproveAndSchedule(time.Time{}, ""))
	suite.Require().NoError(first.Update(ctx, firstCopy))

	suite.Require().NoError(secondCopy.ApproveAndSchedule(time.Time{}, ""))
	err = second.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesCompletedOrders() {
	ctx := context.Background()

	active := suite.createTestOrder(returns.SelfReturn)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	completed := suite.createTestOrder(returns.SelfReturn)
	suite.Require().NoError(completed.ApproveAndSchedule(time.Time{}, ""))
	suite.Require().NoError(completed.ReceiveAtWarehouse([]string{"receipt-2.jpg"}))
	assessments := make(map[kernel.UUID]returns.Assessment)
	for _, item := range completed.Items() {
		assessments[item.ID()] = returns.Assessment{
			Condition:        returns.Good,
			ReturnedQuantity: item.Quantity(),
		}
	}
	suite.Require().NoError(completed.CompleteInspection("GRN-0008", assessments, "", false))
	suite.Require().NoError(completed.SkipConditionForm())
	suite.Require().NoError(completed.NotifyCustomer())
	suite.Require().NoError(completed.Complete())
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(active.ID(), orders[0].ID())
}

func TestReturnRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReturnRepositoryIntegrationTestSuite))
}
