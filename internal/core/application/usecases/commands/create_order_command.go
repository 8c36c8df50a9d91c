package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAnalysisIDsAreRequired = errors.New("at least one analysis must be selected")
)

// CreateOrderCommand represents a request to place a priced order for a
// patient. The selected analyses are resolved against the catalog and
// snapshotted into line items by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, kernel.NewUUID(), patientID,
//	    analysisIDs, decimal.NewFromInt(10), decimal.NewFromInt(100), "fasting")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller          services.Caller
	orderID         kernel.UUID
	patientID       kernel.UUID
	analysisIDs     []kernel.UUID
	discountPercent decimal.Decimal
	advancePaid     decimal.Decimal
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one analysis, and constrains the
// discount to [0,100] and the advance to a non-negative amount.
func NewCreateOrderCommand(
	caller services.Caller,
	orderID kernel.UUID,
	patientID kernel.UUID,
	analysisIDs []kernel.UUID,
	discountPercent decimal.Decimal,
	advancePaid decimal.Decimal,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCaller(caller),
		orderCommand.setOrderID(orderID),
		orderCommand.setPatientID(patientID),
		orderCommand.setAnalysisIDs(analysisIDs),
		orderCommand.setDiscountPercent(discountPercent),
		orderCommand.setAdvancePaid(advancePaid),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c CreateOrderCommand) Caller() services.Caller {
	return c.caller
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PatientID returns the subject patient's identifier.
func (c CreateOrderCommand) PatientID() kernel.UUID {
	return c.patientID
}

// AnalysisIDs returns the selected catalog analyses.
func (c CreateOrderCommand) AnalysisIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.analysisIDs))
	copy(ids, c.analysisIDs)
	return ids
}

// DiscountPercent returns the discount percentage in [0,100].
func (c CreateOrderCommand) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

// AdvancePaid returns the advance payment amount.
func (c CreateOrderCommand) AdvancePaid() decimal.Decimal {
	return c.advancePaid
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}

	c.patientID = patientID
	return nil
}

func (c *CreateOrderCommand) setAnalysisIDs(analysisIDs []kernel.UUID) error {
	if len(analysisIDs) == 0 {
		return ErrAnalysisIDsAreRequired
	}
	for _, id := range analysisIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("analysisIds", err)
		}
	}

	c.analysisIDs = make([]kernel.UUID, len(analysisIDs))
	copy(c.analysisIDs, analysisIDs)
	return nil
}

func (c *CreateOrderCommand) setDiscountPercent(discountPercent decimal.Decimal) error {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discountPercent", discountPercent.String(), 0, 100)
	}

	c.discountPercent = discountPercent
	return nil
}

func (c *CreateOrderCommand) setAdvancePaid(advancePaid decimal.Decimal) error {
	if advancePaid.IsNegative() {
		return errs.NewValueIsInvalidError("advancePaid")
	}

	c.advancePaid = advancePaid
	return nil
}
