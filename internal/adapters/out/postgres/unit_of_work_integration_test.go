package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"labflow/internal/adapters/out/postgres"
	"labflow/internal/adapters/out/postgres/analysisrepo"
	"labflow/internal/adapters/out/postgres/orderrepo"
	"labflow/internal/adapters/out/postgres/patientrepo"
	"labflow/internal/adapters/out/postgres/samplerepo"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/sample"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// laboratory repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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
		&analysisrepo.AnalysisDTO{},
		&patientrepo.PatientDTO{},
		&orderrepo.OrderDTO{},
		&samplerepo.SampleDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE analyses, patients, orders, samples").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewLineItem(
		kernel.NewUUID(), "Química Sanguínea", decimal.RequireFromString("250.00"), "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, decimal.Zero, decimal.Zero, "")
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestSample(orderID, patientID kernel.UUID) *sample.Sample {
	testSample, err := sample.NewSample(
		kernel.NewUUID(), orderID, patientID, "Ana María López", sample.CategoryBloodChemistry, "")
	suite.Require().NoError(err)
	return testSample
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	testSample := suite.createTestSample(testOrder.ID(), testOrder.PatientID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.SampleRepository().AddBatch(ctx, []*sample.Sample{testSample}))
	suite.Require().NoError(uow.Commit(ctx))

	verifier := suite.factory.Create()
	loadedOrder, err := verifier.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.ID().IsEqual(testOrder.ID()))

	loadedSamples, err := verifier.SampleRepository().GetAllByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(loadedSamples, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	testSample := suite.createTestSample(testOrder.ID(), testOrder.PatientID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.SampleRepository().AddBatch(ctx, []*sample.Sample{testSample}))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, sampleCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&samplerepo.SampleDTO{}).Count(&sampleCount).Error)
	suite.Zero(orderCount)
	suite.Zero(sampleCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
