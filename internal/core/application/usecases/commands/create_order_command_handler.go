package commands

import (
	"context"

	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the patient and the selected analyses, snapshots catalog pricing
// into line items, computes totals and persists the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an IntakeUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory, policy services.AccessPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order placement command.
// The patient and every selected analysis must exist and be active; catalog
// prices are copied into the order so later catalog edits never reprice a
// placed order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageOrders(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subject, err := uow.PatientRepository().Get(ctx, cmd.PatientID())
	if err != nil {
		return errs.NewInvalidReferenceErrorWithCause("patientId", cmd.PatientID().String(), err)
	}
	if !subject.IsActive() {
		return errs.NewInvalidReferenceError("patientId", cmd.PatientID().String())
	}

	analysisRepo := uow.AnalysisRepository()
	items := make([]order.LineItem, 0, len(cmd.AnalysisIDs()))
	for _, analysisID := range cmd.AnalysisIDs() {
		a, err := analysisRepo.Get(ctx, analysisID)
		if err != nil {
			return errs.NewInvalidReferenceErrorWithCause("analysisIds", analysisID.String(), err)
		}
		if !a.IsActive() {
			return errs.NewInvalidReferenceError("analysisIds", analysisID.String())
		}

		item, err := order.NewLineItem(a.ID(), a.Name(), a.UnitCost(), a.Description())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.PatientID(),
		items,
		cmd.DiscountPercent(),
		cmd.AdvancePaid(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
