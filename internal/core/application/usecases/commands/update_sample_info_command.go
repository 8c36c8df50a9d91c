package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrUpdateSampleInfoCommandIsNotConstructed = errors.New(
	"UpdateSampleInfoCommand must be created via NewUpdateSampleInfoCommand constructor",
)

// UpdateSampleInfoCommand represents an edit to a sample's collection
// metadata. Only allowed while the sample has no results yet; afterwards
// the payload is the only editable part, through EditResultsCommand.
type UpdateSampleInfoCommand struct { //nolint:recvcheck //using for validation
	caller       services.Caller
	sampleID     kernel.UUID
	observations string

	guard guard.ConstructorGuard
}

// NewUpdateSampleInfoCommand creates a command to edit sample metadata.
func NewUpdateSampleInfoCommand(caller services.Caller, sampleID kernel.UUID, observations string) (UpdateSampleInfoCommand, error) {
	cmd := UpdateSampleInfoCommand{
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSampleID(sampleID),
	); err != nil {
		return UpdateSampleInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSampleInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSampleInfoCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c UpdateSampleInfoCommand) Caller() services.Caller {
	return c.caller
}

// SampleID returns the sample being edited.
func (c UpdateSampleInfoCommand) SampleID() kernel.UUID {
	return c.sampleID
}

// Observations returns the new collection notes.
func (c UpdateSampleInfoCommand) Observations() string {
	return c.observations
}

func (c *UpdateSampleInfoCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateSampleInfoCommand) setSampleID(sampleID kernel.UUID) error {
	if err := sampleID.Validate(); err != nil {
		return err
	}

	c.sampleID = sampleID
	return nil
}
