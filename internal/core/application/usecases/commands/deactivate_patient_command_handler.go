package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// DeactivatePatientCommandHandler handles account soft-deletion.
type DeactivatePatientCommandHandler struct {
	uowFactory PatientUoWFactory
	policy     services.AccessPolicy
}

// NewDeactivatePatientCommandHandler creates a handler for account deactivation.
func NewDeactivatePatientCommandHandler(uowFactory PatientUoWFactory, policy services.AccessPolicy) DeactivatePatientCommandHandler {
	return DeactivatePatientCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deactivation command.
func (h *DeactivatePatientCommandHandler) Handle(ctx context.Context, cmd DeactivatePatientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManagePatients(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	patientRepo := uow.PatientRepository()
	aggregate, err := patientRepo.Get(ctx, cmd.PatientID())
	if err != nil {
		return err
	}

	aggregate.Deactivate()

	if err = patientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
