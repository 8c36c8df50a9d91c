package samplerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"labflow/internal/adapters/out/postgres/samplerepo"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/pkg/errs"
)

// SampleRepositoryIntegrationTestSuite provides integration tests for
// SampleRepository using PostgreSQL containers.
type SampleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *samplerepo.GormSampleRepository
}

func (suite *SampleRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&samplerepo.SampleDTO{}))
}

func (suite *SampleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE samples").Error)
	suite.repository = samplerepo.NewGormSampleRepository(suite.db)
}

func (suite *SampleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SampleRepositoryIntegrationTestSuite) createTestSample(orderID kernel.UUID) *sample.Sample {
	testSample, err := sample.NewSample(
		kernel.NewUUID(),
		orderID,
		kernel.NewUUID(),
		"Ana María López",
		sample.CategoryBloodChemistry,
		"muestra en ayunas",
	)
	suite.Require().NoError(err)
	return testSample
}

func chemistryFields() map[string]float64 {
	return map[string]float64{
		"glucose":             92.0,
		"glucosePostprandial": 120.0,
		"uricAcid":            5.1,
		"urea":                28.0,
		"creatinine":          0.9,
		"cholesterol":         180.0,
		"ldh":                 140.0,
		"gammaGt":             30.0,
	}
}

func (suite *SampleRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()
	testSample := suite.createTestSample(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, testSample))

	loaded, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testSample.ID()))
	suite.True(loaded.OrderID().IsEqual(testSample.OrderID()))
	suite.True(loaded.PatientID().IsEqual(testSample.PatientID()))
	suite.Equal("Ana María López", loaded.PatientDisplayName())
	suite.Equal(sample.CategoryBloodChemistry, loaded.Category())
	suite.Equal("muestra en ayunas", loaded.Observations())
	suite.True(loaded.IsActive())
	suite.False(loaded.IsClientVisible())
	suite.False(loaded.HasResults())
	suite.Equal(1, loaded.Version())
}

func (suite *SampleRepositoryIntegrationTestSuite) TestUpdate_PersistsResultPayload() {
	ctx := context.Background()
	testSample := suite.createTestSample(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testSample))

	loaded, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)

	payload, err := sample.NewResultPayload(sample.CategoryBloodChemistry, chemistryFields())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RegisterResults(payload))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)

	suite.True(reloaded.IsClientVisible())
	suite.Equal(2, reloaded.Version())

	result, ok := reloaded.Result()
	suite.Require().True(ok)
	chemistry, ok := result.BloodChemistry()
	suite.Require().True(ok)
	suite.InDelta(92.0, chemistry.Glucose, 0.0001)
	suite.InDelta(30.0, chemistry.GammaGT, 0.0001)
}

func (suite *SampleRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModification() {
	ctx := context.Background()
	testSample := suite.createTestSample(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testSample))

	first, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.UpdateObservations("primera edición"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.UpdateObservations("edición tardía"))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrentModification)

	reloaded, err := suite.repository.Get(ctx, testSample.ID())
	suite.Require().NoError(err)
	suite.Equal("primera edición", reloaded.Observations())
}

func (suite *SampleRepositoryIntegrationTestSuite) TestAddBatch_PersistsAllSamples() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	samples := []*sample.Sample{
		suite.createTestSample(orderID),
		suite.createTestSample(orderID),
	}

	suite.Require().NoError(suite.repository.AddBatch(ctx, samples))

	loaded, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(loaded, 2)
}

func (suite *SampleRepositoryIntegrationTestSuite) TestGetAllByOrder_ExcludesOtherOrders() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestSample(orderID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestSample(kernel.NewUUID())))

	loaded, err := suite.repository.GetAllByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].OrderID().IsEqual(orderID))
}

func (suite *SampleRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestSampleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SampleRepositoryIntegrationTestSuite))
}
