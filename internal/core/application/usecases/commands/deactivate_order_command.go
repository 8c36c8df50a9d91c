package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrDeactivateOrderCommandIsNotConstructed = errors.New(
	"DeactivateOrderCommand must be created via NewDeactivateOrderCommand constructor",
)

// DeactivateOrderCommand represents a request to soft-delete an order.
// Deactivation is orthogonal to status and allowed from any status; it does
// not cascade to the order's samples, which stay independently governed.
type DeactivateOrderCommand struct { //nolint:recvcheck //using for validation
	caller  services.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateOrderCommand creates a command to deactivate an order.
func NewDeactivateOrderCommand(caller services.Caller, orderID kernel.UUID) (DeactivateOrderCommand, error) {
	cmd := DeactivateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return DeactivateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateOrderCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c DeactivateOrderCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the order being deactivated.
func (c DeactivateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeactivateOrderCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeactivateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
