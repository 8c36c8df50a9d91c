package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrUpdateAnalysisCommandIsNotConstructed = errors.New(
	"UpdateAnalysisCommand must be created via NewUpdateAnalysisCommand constructor",
)

// UpdateAnalysisCommand represents an edit to a catalog analysis. Edits
// never reprice placed orders, whose line items are value snapshots.
type UpdateAnalysisCommand struct { //nolint:recvcheck //using for validation
	caller         services.Caller
	analysisID     kernel.UUID
	name           string
	unitCost       decimal.Decimal
	turnaroundDays int
	description    string

	guard guard.ConstructorGuard
}

// NewUpdateAnalysisCommand creates a command to edit a catalog analysis.
func NewUpdateAnalysisCommand(
	caller services.Caller,
	analysisID kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	turnaroundDays int,
	description string,
) (UpdateAnalysisCommand, error) {
	cmd := UpdateAnalysisCommand{
		name:           name,
		unitCost:       unitCost,
		turnaroundDays: turnaroundDays,
		description:    description,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setAnalysisID(analysisID),
	); err != nil {
		return UpdateAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAnalysisCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c UpdateAnalysisCommand) Caller() services.Caller {
	return c.caller
}

// AnalysisID returns the analysis being edited.
func (c UpdateAnalysisCommand) AnalysisID() kernel.UUID {
	return c.analysisID
}

// Name returns the new analysis name.
func (c UpdateAnalysisCommand) Name() string {
	return c.name
}

// UnitCost returns the new catalog price.
func (c UpdateAnalysisCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

// TurnaroundDays returns the new processing time.
func (c UpdateAnalysisCommand) TurnaroundDays() int {
	return c.turnaroundDays
}

// Description returns the new description.
func (c UpdateAnalysisCommand) Description() string {
	return c.description
}

func (c *UpdateAnalysisCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateAnalysisCommand) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}

	c.analysisID = analysisID
	return nil
}

