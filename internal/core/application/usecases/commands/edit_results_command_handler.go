package commands

import (
	"context"

	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
)

// EditResultsCommandHandler handles corrections to released results.
type EditResultsCommandHandler struct {
	uowFactory SampleUoWFactory
	policy     services.AccessPolicy
}

// NewEditResultsCommandHandler creates a handler for result corrections.
func NewEditResultsCommandHandler(uowFactory SampleUoWFactory, policy services.AccessPolicy) EditResultsCommandHandler {
	return EditResultsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the correction command. Editing requires results to have
// been released already; the replacement payload goes through the same
// schema validation as first-time entry.
func (h *EditResultsCommandHandler) Handle(ctx context.Context, cmd EditResultsCommand) error {
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

	payload, err := sample.NewResultPayload(aggregate.Category(), cmd.Fields())
	if err != nil {
		return err
	}

	if err = aggregate.EditResults(payload); err != nil {
		return err
	}

	if err = sampleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
