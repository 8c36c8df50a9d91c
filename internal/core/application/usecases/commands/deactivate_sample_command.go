package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrDeactivateSampleCommandIsNotConstructed = errors.New(
	"DeactivateSampleCommand must be created via NewDeactivateSampleCommand constructor",
)

// DeactivateSampleCommand represents a request to soft-delete a sample.
// Allowed from any state; a deactivated sample rejects all further result
// operations.
type DeactivateSampleCommand struct { //nolint:recvcheck //using for validation
	caller   services.Caller
	sampleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateSampleCommand creates a command to deactivate a sample.
func NewDeactivateSampleCommand(caller services.Caller, sampleID kernel.UUID) (DeactivateSampleCommand, error) {
	cmd := DeactivateSampleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSampleID(sampleID),
	); err != nil {
		return DeactivateSampleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateSampleCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateSampleCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c DeactivateSampleCommand) Caller() services.Caller {
	return c.caller
}

// SampleID returns the sample being deactivated.
func (c DeactivateSampleCommand) SampleID() kernel.UUID {
	return c.sampleID
}

func (c *DeactivateSampleCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeactivateSampleCommand) setSampleID(sampleID kernel.UUID) error {
	if err := sampleID.Validate(); err != nil {
		return err
	}

	c.sampleID = sampleID
	return nil
}
