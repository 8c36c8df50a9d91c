package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrDeactivateAnalysisCommandIsNotConstructed = errors.New(
	"DeactivateAnalysisCommand must be created via NewDeactivateAnalysisCommand constructor",
)

// DeactivateAnalysisCommand represents a request to retire a catalog
// analysis. Analyses are never hard-deleted so the pricing history of
// placed orders stays intact.
type DeactivateAnalysisCommand struct { //nolint:recvcheck //using for validation
	caller     services.Caller
	analysisID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateAnalysisCommand creates a command to retire an analysis.
func NewDeactivateAnalysisCommand(caller services.Caller, analysisID kernel.UUID) (DeactivateAnalysisCommand, error) {
	cmd := DeactivateAnalysisCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setAnalysisID(analysisID),
	); err != nil {
		return DeactivateAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateAnalysisCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c DeactivateAnalysisCommand) Caller() services.Caller {
	return c.caller
}

// AnalysisID returns the analysis being retired.
func (c DeactivateAnalysisCommand) AnalysisID() kernel.UUID {
	return c.analysisID
}

func (c *DeactivateAnalysisCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeactivateAnalysisCommand) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}

	c.analysisID = analysisID
	return nil
}

