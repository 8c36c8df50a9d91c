package commands

import (
	"context"

	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
)

// RegisterResultsCommandHandler handles first-time result entry. The payload
// is validated against the sample's category schema; on success the results
// become visible to the patient atomically with the write.
type RegisterResultsCommandHandler struct {
	uowFactory SampleUoWFactory
	policy     services.AccessPolicy
}

// NewRegisterResultsCommandHandler creates a handler for result entry.
func NewRegisterResultsCommandHandler(uowFactory SampleUoWFactory, policy services.AccessPolicy) RegisterResultsCommandHandler {
	return RegisterResultsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the result entry command. A schema mismatch fails before
// the aggregate changes, so no partial payload is ever persisted.
func (h *RegisterResultsCommandHandler) Handle(ctx context.Context, cmd RegisterResultsCommand) error {
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

	if err = aggregate.RegisterResults(payload); err != nil {
		return err
	}

	if err = sampleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
