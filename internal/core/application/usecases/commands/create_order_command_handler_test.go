package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := callerWithRole(t, patient.RoleAccounting)
	patientID := kernel.NewUUID()
	a := analysisFixture(t, "Blood Chemistry Panel")
	cmd, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), patientID, []kernel.UUID{a.ID()},
		decimal.NewFromInt(10), decimal.NewFromInt(100), "fasting",
	)
	require.NoError(t, err)

	patientRepo := new(MockPatientRepository)
	analysisRepo := new(MockAnalysisRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PatientRepository").Return(patientRepo).Once(),
		patientRepo.On("Get", mock.Anything, patientID).Return(patientFixture(t, patientID), nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("Get", mock.Anything, a.ID()).Return(a, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	patientRepo.AssertExpectations(t)
	analysisRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockIntakeUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	caller := callerWithRole(t, patient.RoleLaboratory)
	cmd, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()},
		decimal.Zero, decimal.Zero, "",
	)
	require.NoError(t, err)

	factory := new(MockIntakeUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownAnalysis(t *testing.T) {
	ctx := t.Context()
	caller := callerWithRole(t, patient.RoleAdmin)
	patientID := kernel.NewUUID()
	analysisID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), patientID, []kernel.UUID{analysisID},
		decimal.Zero, decimal.Zero, "",
	)
	require.NoError(t, err)

	patientRepo := new(MockPatientRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PatientRepository").Return(patientRepo).Once(),
		patientRepo.On("Get", mock.Anything, patientID).Return(patientFixture(t, patientID), nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("Get", mock.Anything, analysisID).
			Return(nil, errs.NewObjectNotFoundError("analysisId", analysisID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidReference)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveAnalysis(t *testing.T) {
	ctx := t.Context()
	caller := callerWithRole(t, patient.RoleAccounting)
	patientID := kernel.NewUUID()
	a := analysisFixture(t, "Blood Chemistry Panel")
	a.Deactivate()
	cmd, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), patientID, []kernel.UUID{a.ID()},
		decimal.Zero, decimal.Zero, "",
	)
	require.NoError(t, err)

	patientRepo := new(MockPatientRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PatientRepository").Return(patientRepo).Once(),
		patientRepo.On("Get", mock.Anything, patientID).Return(patientFixture(t, patientID), nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("Get", mock.Anything, a.ID()).Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidReference)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_EmptyAnalysisIDs(t *testing.T) {
	caller := callerWithRole(t, patient.RoleAccounting)
	_, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), kernel.NewUUID(), nil,
		decimal.Zero, decimal.Zero, "",
	)
	require.ErrorIs(t, err, commands.ErrAnalysisIDsAreRequired)
}

func TestNewCreateOrderCommand_DiscountOutOfRange(t *testing.T) {
	caller := callerWithRole(t, patient.RoleAccounting)
	_, err := commands.NewCreateOrderCommand(
		caller, kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()},
		decimal.NewFromInt(101), decimal.Zero, "",
	)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
