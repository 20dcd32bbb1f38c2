package driverrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/driverrepo"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

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

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.addTestDriver(ctx, "+15550123")

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("John Doe", retrieved.Name())
	suite.Equal("+15550123", retrieved.Phone())
	suite.Equal(original.PasswordHash(), retrieved.PasswordHash())
	suite.True(retrieved.IsAvailable())
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetByPhone() {
	ctx := context.Background()

	original := suite.addTestDriver(ctx, "+15550123")

	retrieved, err := suite.repository.GetByPhone(ctx, "+15550123")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetByPhone(ctx, "+19990000")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByPhone(ctx, "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailabilityFlags() {
	ctx := context.Background()

	testDriver := suite.addTestDriver(ctx, "+15550123")

	suite.Require().NoError(testDriver.MarkBusy())
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkBusy_AvailableDriver_Succeeds() {
	ctx := context.Background()

	testDriver := suite.addTestDriver(ctx, "+15550123")

	suite.Require().NoError(suite.repository.MarkBusy(ctx, testDriver.ID()))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkBusy_BusyDriver_ReturnsConflictError() {
	ctx := context.Background()

	testDriver := suite.addTestDriver(ctx, "+15550123")
	suite.Require().NoError(suite.repository.MarkBusy(ctx, testDriver.ID()))

	err := suite.repository.MarkBusy(ctx, testDriver.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkBusy_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()

	testDriver := suite.addTestDriver(ctx, "+15550123")

	const contenders = 8
	results := make([]error, contenders)
	var wg sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)

	for i := range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start.Wait()
			results[i] = suite.repository.MarkBusy(ctx, testDriver.ID())
		}()
	}

	start.Done()
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConflict)
	}
	suite.Equal(1, winners)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestRelease_Idempotent() {
	ctx := context.Background()

	testDriver := suite.addTestDriver(ctx, "+15550123")
	suite.Require().NoError(suite.repository.MarkBusy(ctx, testDriver.ID()))

	suite.Require().NoError(suite.repository.Release(ctx, testDriver.ID()))
	suite.Require().NoError(suite.repository.Release(ctx, testDriver.ID()))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsAvailable())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllBusy_ReturnsOnlyActiveBusyDrivers() {
	ctx := context.Background()

	available := suite.addTestDriver(ctx, "+15550101")
	busy := suite.addTestDriver(ctx, "+15550102")
	suite.Require().NoError(suite.repository.MarkBusy(ctx, busy.ID()))

	deactivated, err := driver.RestoreDriver(
		kernel.NewUUID(), "Gone Driver", "+15550103",
		"$2a$10$fakehashfakehashfakehash", false, false)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", deactivated.ID(), deactivated).Once()
	suite.Require().NoError(suite.repository.Add(ctx, deactivated))

	busyDrivers, err := suite.repository.GetAllBusy(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(busyDrivers, 1)
	suite.Equal(busy.ID(), busyDrivers[0].ID())
	suite.NotEqual(available.ID(), busyDrivers[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// addTestDriver persists an available, active driver with the given phone.
func (suite *DriverRepositoryIntegrationTestSuite) addTestDriver(
	ctx context.Context, phone string,
) *driver.Driver {
	testDriver, err := driver.NewDriver(
		kernel.NewUUID(), "John Doe", phone, "$2a$10$fakehashfakehashfakehash")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	return testDriver
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
