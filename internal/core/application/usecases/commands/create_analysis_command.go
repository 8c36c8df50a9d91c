package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrCreateAnalysisCommandIsNotConstructed = errors.New(
	"CreateAnalysisCommand must be created via NewCreateAnalysisCommand constructor",
)

// CreateAnalysisCommand represents a request to add an analysis to the
// catalog.
type CreateAnalysisCommand struct { //nolint:recvcheck //using for validation
	caller         services.Caller
	analysisID     kernel.UUID
	name           string
	unitCost       decimal.Decimal
	turnaroundDays int
	description    string

	guard guard.ConstructorGuard
}

// NewCreateAnalysisCommand creates a command to add a catalog analysis.
// Field-level validation is delegated to the aggregate constructor.
func NewCreateAnalysisCommand(
	caller services.Caller,
	analysisID kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	turnaroundDays int,
	description string,
) (CreateAnalysisCommand, error) {
	cmd := CreateAnalysisCommand{
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
		return CreateAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrCreateAnalysisCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c CreateAnalysisCommand) Caller() services.Caller {
	return c.caller
}

// AnalysisID returns the identifier for the new analysis.
func (c CreateAnalysisCommand) AnalysisID() kernel.UUID {
	return c.analysisID
}

// Name returns the analysis name.
func (c CreateAnalysisCommand) Name() string {
	return c.name
}

// UnitCost returns the catalog price.
func (c CreateAnalysisCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

// TurnaroundDays returns the promised processing time.
func (c CreateAnalysisCommand) TurnaroundDays() int {
	return c.turnaroundDays
}

// Description returns the analysis description.
func (c CreateAnalysisCommand) Description() string {
	return c.description
}

func (c *CreateAnalysisCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateAnalysisCommand) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}

	c.analysisID = analysisID
	return nil
}

