package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNoOrderChangesRequested = errors.New("at least one order change must be requested")
)

// UpdateOrderCommand represents a request to edit a placed order. Each field
// is optional; nil means leave unchanged. Line items are immutable after
// creation and cannot be edited here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	caller          services.Caller
	orderID         kernel.UUID
	status          *order.Status
	discountPercent *decimal.Decimal
	advancePaid     *decimal.Decimal
	notes           *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order. At least one of
// status, discountPercent, advancePaid or notes must be provided.
func NewUpdateOrderCommand(
	caller services.Caller,
	orderID kernel.UUID,
	status *order.Status,
	discountPercent *decimal.Decimal,
	advancePaid *decimal.Decimal,
	notes *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if status == nil && discountPercent == nil && advancePaid == nil && notes == nil {
		return UpdateOrderCommand{}, ErrNoOrderChangesRequested
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setDiscountPercent(discountPercent),
		cmd.setAdvancePaid(advancePaid),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c UpdateOrderCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status transition, or nil.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// DiscountPercent returns the new discount, or nil.
func (c UpdateOrderCommand) DiscountPercent() *decimal.Decimal {
	return c.discountPercent
}

// AdvancePaid returns the new advance amount, or nil.
func (c UpdateOrderCommand) AdvancePaid() *decimal.Decimal {
	return c.advancePaid
}

// Notes returns the new notes, or nil.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

func (c *UpdateOrderCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setDiscountPercent(discountPercent *decimal.Decimal) error {
	if discountPercent == nil {
		return nil
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discountPercent", discountPercent.String(), 0, 100)
	}

	c.discountPercent = discountPercent
	return nil
}

func (c *UpdateOrderCommand) setAdvancePaid(advancePaid *decimal.Decimal) error {
	if advancePaid == nil {
		return nil
	}
	if advancePaid.IsNegative() {
		return errs.NewValueIsInvalidError("advancePaid")
	}

	c.advancePaid = advancePaid
	return nil
}
