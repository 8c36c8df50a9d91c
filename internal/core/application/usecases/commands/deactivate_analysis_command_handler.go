package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// DeactivateAnalysisCommandHandler handles catalog entry soft-deletion.
type DeactivateAnalysisCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewDeactivateAnalysisCommandHandler creates a handler for catalog deactivation.
func NewDeactivateAnalysisCommandHandler(uowFactory CatalogUoWFactory, policy services.AccessPolicy) DeactivateAnalysisCommandHandler {
	return DeactivateAnalysisCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deactivation command.
func (h *DeactivateAnalysisCommandHandler) Handle(ctx context.Context, cmd DeactivateAnalysisCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageCatalog(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	analysisRepo := uow.AnalysisRepository()
	aggregate, err := analysisRepo.Get(ctx, cmd.AnalysisID())
	if err != nil {
		return err
	}

	aggregate.Deactivate()

	if err = analysisRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
