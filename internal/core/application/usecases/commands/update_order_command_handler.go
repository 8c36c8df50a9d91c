package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles edits to placed orders. Discount and
// advance changes recompute totals inside the aggregate; status changes go
// through the order state machine and fail on terminal states.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order edit command. The version-checked repository
// update rejects a stale write so two staff editing money fields at once
// cannot silently overwrite each other's totals.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if discount := cmd.DiscountPercent(); discount != nil {
		if err = aggregate.ChangeDiscount(*discount); err != nil {
			return err
		}
	}
	if advance := cmd.AdvancePaid(); advance != nil {
		if err = aggregate.ChangeAdvance(*advance); err != nil {
			return err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		aggregate.UpdateNotes(*notes)
	}
	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
