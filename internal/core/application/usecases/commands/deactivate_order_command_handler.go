package commands

import (
	"context"

	"labflow/internal/core/domain/services"
)

// DeactivateOrderCommandHandler handles order soft-deletion.
type DeactivateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeactivateOrderCommandHandler creates a handler for order deactivation.
func NewDeactivateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) DeactivateOrderCommandHandler {
	return DeactivateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deactivation command.
func (h *DeactivateOrderCommandHandler) Handle(ctx context.Context, cmd DeactivateOrderCommand) error {
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

	aggregate.Deactivate()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
