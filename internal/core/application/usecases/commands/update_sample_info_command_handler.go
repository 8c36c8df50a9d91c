package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// UpdateSampleInfoCommandHandler handles edits to sample collection metadata.
type UpdateSampleInfoCommandHandler struct {
	uowFactory SampleUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateSampleInfoCommandHandler creates a handler for metadata edits.
func NewUpdateSampleInfoCommandHandler(uowFactory SampleUoWFactory, policy services.AccessPolicy) UpdateSampleInfoCommandHandler {
	return UpdateSampleInfoCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the metadata edit command.
func (h *UpdateSampleInfoCommandHandler) Handle(ctx context.Context, cmd UpdateSampleInfoCommand) error {
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

	if err = aggregate.UpdateObservations(cmd.Observations()); err != nil {
		return err
	}

	if err = sampleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
