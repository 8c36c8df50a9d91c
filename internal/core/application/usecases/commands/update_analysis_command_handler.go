package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// UpdateAnalysisCommandHandler handles catalog entry edits. Already priced
// orders keep their line-item snapshots, so edits never rewrite history.
type UpdateAnalysisCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateAnalysisCommandHandler creates a handler for editing catalog entries.
func NewUpdateAnalysisCommandHandler(uowFactory CatalogUoWFactory, policy services.AccessPolicy) UpdateAnalysisCommandHandler {
	return UpdateAnalysisCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the update command.
func (h *UpdateAnalysisCommandHandler) Handle(ctx context.Context, cmd UpdateAnalysisCommand) error {
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

	if err = aggregate.Update(cmd.Name(), cmd.UnitCost(), cmd.TurnaroundDays(), cmd.Description()); err != nil {
		return err
	}

	if err = analysisRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
