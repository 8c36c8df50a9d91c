package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// DeactivateSampleCommandHandler handles sample soft-deletion.
type DeactivateSampleCommandHandler struct {
	uowFactory SampleUoWFactory
	policy     services.AccessPolicy
}

// NewDeactivateSampleCommandHandler creates a handler for sample deactivation.
func NewDeactivateSampleCommandHandler(uowFactory SampleUoWFactory, policy services.AccessPolicy) DeactivateSampleCommandHandler {
	return DeactivateSampleCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deactivation command.
func (h *DeactivateSampleCommandHandler) Handle(ctx context.Context, cmd DeactivateSampleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageSamples(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sampleRepo := uow.SampleRepository()
	aggregate, err := sampleRepo.Get(ctx, cmd.SampleID())
	if err != nil {
		return err
	}

	aggregate.Deactivate()

	if err = sampleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
