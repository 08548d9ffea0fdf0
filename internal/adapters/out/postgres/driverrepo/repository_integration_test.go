package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/driverrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite provides integration tests for
// DriverRepository, centered on the delivering flag as an exclusivity lock.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers, order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) addDriver(name string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, "010-1234-5678", "68루 2549")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), d))
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	added := suite.addDriver("Kim Minsu")

	loaded, err := suite.repository.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(added.ID()))
	suite.Equal("Kim Minsu", loaded.Name())
	suite.False(loaded.IsDelivering())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkDelivering_BooksFreeDriver() {
	ctx := context.Background()
	added := suite.addDriver("Kim Minsu")

	suite.Require().NoError(suite.repository.MarkDelivering(ctx, added.ID()))

	loaded, err := suite.repository.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsDelivering())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkDelivering_SecondBookingConflicts() {
	ctx := context.Background()
	added := suite.addDriver("Kim Minsu")

	suite.Require().NoError(suite.repository.MarkDelivering(ctx, added.ID()))

	err := suite.repository.MarkDelivering(ctx, added.ID())

	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkDelivering_UnknownDriver() {
	err := suite.repository.MarkDelivering(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestRelease_ReturnsDriverToFreePool() {
	ctx := context.Background()
	added := suite.addDriver("Kim Minsu")
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, added.ID()))

	suite.Require().NoError(suite.repository.Release(ctx, added.ID()))

	// Freed driver can be booked again.
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, added.ID()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllFree_SkipsDeliveringDrivers() {
	ctx := context.Background()
	busy := suite.addDriver("Kim Minsu")
	free := suite.addDriver("Lee Jiwon")
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, busy.ID()))

	drivers, err := suite.repository.GetAllFree(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(drivers, 1)
	suite.True(drivers[0].ID().IsEqual(free.ID()))
}

// seedInTransitOrder persists an order dispatched to the given driver, so the
// sweep sees the driver as legitimately busy.
func (suite *DriverRepositoryIntegrationTestSuite) seedInTransitOrder(driverID kernel.UUID) {
	ctx := context.Background()
	orders := orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	item, err := order.NewItem(kernel.NewUUID(), "Americano Beans 1kg", 2, 1000)
	suite.Require().NoError(err)

	aggregate, err := order.NewAgencyOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Busan Agency",
		time.Now().Truncate(time.Microsecond),
		time.Now().AddDate(0, 0, 4).Truncate(time.Microsecond),
		[]order.Item{item},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(orders.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Approve())
	suite.Require().NoError(orders.UpdateWithStatus(ctx, aggregate, order.PendingApproval))

	assignment, err := order.NewDeliveryAssignment(driverID, "Kim Minsu", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Dispatch(assignment))
	suite.Require().NoError(orders.UpdateWithStatus(ctx, aggregate, order.ReadyToShip))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestReleaseOrphaned_FreesDriversWithoutInTransitOrder() {
	ctx := context.Background()
	orphaned := suite.addDriver("Kim Minsu")
	legitimate := suite.addDriver("Lee Jiwon")
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, orphaned.ID()))
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, legitimate.ID()))
	suite.seedInTransitOrder(legitimate.ID())

	released, err := suite.repository.ReleaseOrphaned(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(1), released)

	loadedOrphan, err := suite.repository.Get(ctx, orphaned.ID())
	suite.Require().NoError(err)
	suite.False(loadedOrphan.IsDelivering())

	loadedLegit, err := suite.repository.Get(ctx, legitimate.ID())
	suite.Require().NoError(err)
	suite.True(loadedLegit.IsDelivering())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestReleaseOrphaned_NoInTransitOrders() {
	ctx := context.Background()
	first := suite.addDriver("Kim Minsu")
	second := suite.addDriver("Lee Jiwon")
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, first.ID()))
	suite.Require().NoError(suite.repository.MarkDelivering(ctx, second.ID()))

	released, err := suite.repository.ReleaseOrphaned(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(2), released)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestReleaseOrphaned_AllDriversFree() {
	suite.addDriver("Kim Minsu")

	released, err := suite.repository.ReleaseOrphaned(context.Background())

	suite.Require().NoError(err)
	suite.Zero(released)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
