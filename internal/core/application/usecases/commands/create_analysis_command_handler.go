package commands

import (
	"context"

	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/services"
)

// CreateAnalysisCommandHandler handles catalog entry creation.
type CreateAnalysisCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

// NewCreateAnalysisCommandHandler creates a handler for adding catalog entries.
func NewCreateAnalysisCommandHandler(uowFactory CatalogUoWFactory, policy services.AccessPolicy) CreateAnalysisCommandHandler {
	return CreateAnalysisCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the creation command.
func (h *CreateAnalysisCommandHandler) Handle(ctx context.Context, cmd CreateAnalysisCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageCatalog(cmd.Caller()); err != nil {
		return err
	}

	aggregate, err := analysis.NewAnalysis(
		cmd.AnalysisID(), cmd.Name(), cmd.UnitCost(), cmd.TurnaroundDays(), cmd.Description())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AnalysisRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
