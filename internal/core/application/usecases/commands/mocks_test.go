package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/ports"
)

type MockAnalysisRepository struct{ mock.Mock }

func (m *MockAnalysisRepository) Add(ctx context.Context, a *analysis.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAnalysisRepository) Update(ctx context.Context, a *analysis.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAnalysisRepository) Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.Analysis), args.Error(1)
}
func (m *MockAnalysisRepository) GetAllActive(ctx context.Context) ([]*analysis.Analysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.Analysis), args.Error(1)
}

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) Add(ctx context.Context, p *patient.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}
func (m *MockPatientRepository) GetByEmail(ctx context.Context, email string) (*patient.Patient, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSampleRepository struct{ mock.Mock }

func (m *MockSampleRepository) Add(ctx context.Context, s *sample.Sample) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSampleRepository) AddBatch(ctx context.Context, s []*sample.Sample) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSampleRepository) Update(ctx context.Context, s *sample.Sample) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSampleRepository) Get(ctx context.Context, id kernel.UUID) (*sample.Sample, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sample.Sample), args.Error(1)
}
func (m *MockSampleRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*sample.Sample, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sample.Sample), args.Error(1)
}

// mockTx implements the transaction lifecycle shared by every mock UoW.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSampleUoW struct{ mockTx }

func (m *MockSampleUoW) SampleRepository() ports.SampleRepository {
	args := m.Called()
	return args.Get(0).(ports.SampleRepository)
}

type MockSampleUoWFactory struct{ mock.Mock }

func (m *MockSampleUoWFactory) Create() commands.SampleUoW {
	args := m.Called()
	return args.Get(0).(commands.SampleUoW)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) AnalysisRepository() ports.AnalysisRepository {
	args := m.Called()
	return args.Get(0).(ports.AnalysisRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockPatientUoW struct{ mockTx }

func (m *MockPatientUoW) PatientRepository() ports.PatientRepository {
	args := m.Called()
	return args.Get(0).(ports.PatientRepository)
}

type MockPatientUoWFactory struct{ mock.Mock }

func (m *MockPatientUoWFactory) Create() commands.PatientUoW {
	args := m.Called()
	return args.Get(0).(commands.PatientUoW)
}

type MockIntakeUoW struct{ mockTx }

func (m *MockIntakeUoW) AnalysisRepository() ports.AnalysisRepository {
	args := m.Called()
	return args.Get(0).(ports.AnalysisRepository)
}
func (m *MockIntakeUoW) PatientRepository() ports.PatientRepository {
	args := m.Called()
	return args.Get(0).(ports.PatientRepository)
}
func (m *MockIntakeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockCollectionUoW struct{ mockTx }

func (m *MockCollectionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCollectionUoW) PatientRepository() ports.PatientRepository {
	args := m.Called()
	return args.Get(0).(ports.PatientRepository)
}
func (m *MockCollectionUoW) SampleRepository() ports.SampleRepository {
	args := m.Called()
	return args.Get(0).(ports.SampleRepository)
}

type MockCollectionUoWFactory struct{ mock.Mock }

func (m *MockCollectionUoWFactory) Create() commands.CollectionUoW {
	args := m.Called()
	return args.Get(0).(commands.CollectionUoW)
}
