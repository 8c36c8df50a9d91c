package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var (
	ErrTakeSampleCommandIsNotConstructed = errors.New(
		"TakeSampleCommand must be created via NewTakeSampleCommand constructor",
	)

	// ErrNoCollectibleItems is returned when an order has no line item with
	// a recognizable result category, so there is nothing to collect.
	ErrNoCollectibleItems = errors.New("order has no collectible line items")

	// ErrOrderNotPending is returned when samples are taken against an order
	// that is already paid or cancelled.
	ErrOrderNotPending = errors.New("samples can only be taken against a pending order")
)

// TakeSampleCommand represents one collection event against a pending
// order: every collectible line item yields one sample, all persisted
// atomically or not at all.
type TakeSampleCommand struct { //nolint:recvcheck //using for validation
	caller       services.Caller
	orderID      kernel.UUID
	observations string

	guard guard.ConstructorGuard
}

// NewTakeSampleCommand creates a command to collect samples for an order.
// The observations apply to every sample of the batch.
func NewTakeSampleCommand(caller services.Caller, orderID kernel.UUID, observations string) (TakeSampleCommand, error) {
	cmd := TakeSampleCommand{
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return TakeSampleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeSampleCommand) Validate() error {
	return c.guard.Validate(ErrTakeSampleCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c TakeSampleCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the order being collected against.
func (c TakeSampleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Observations returns the collection notes for the batch.
func (c TakeSampleCommand) Observations() string {
	return c.observations
}

func (c *TakeSampleCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *TakeSampleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
