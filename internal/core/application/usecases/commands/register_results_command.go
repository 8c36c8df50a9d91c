package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var (
	ErrRegisterResultsCommandIsNotConstructed = errors.New(
		"RegisterResultsCommand must be created via NewRegisterResultsCommand constructor",
	)
	ErrResultFieldsAreRequired = errors.New("result fields are required")
)

// RegisterResultsCommand represents the first result entry for a sample.
// The submitted fields are validated against the sample's category schema
// before anything is persisted, and release to the patient is part of the
// same operation.
type RegisterResultsCommand struct { //nolint:recvcheck //using for validation
	caller   services.Caller
	sampleID kernel.UUID
	fields   map[string]float64

	guard guard.ConstructorGuard
}

// NewRegisterResultsCommand creates a command to enter a sample's results.
func NewRegisterResultsCommand(
	caller services.Caller,
	sampleID kernel.UUID,
	fields map[string]float64,
) (RegisterResultsCommand, error) {
	cmd := RegisterResultsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSampleID(sampleID),
		cmd.setFields(fields),
	); err != nil {
		return RegisterResultsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterResultsCommand) Validate() error {
	return c.guard.Validate(ErrRegisterResultsCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c RegisterResultsCommand) Caller() services.Caller {
	return c.caller
}

// SampleID returns the sample receiving results.
func (c RegisterResultsCommand) SampleID() kernel.UUID {
	return c.sampleID
}

// Fields returns the submitted result values keyed by field name.
func (c RegisterResultsCommand) Fields() map[string]float64 {
	fields := make(map[string]float64, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	return fields
}

func (c *RegisterResultsCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RegisterResultsCommand) setSampleID(sampleID kernel.UUID) error {
	if err := sampleID.Validate(); err != nil {
		return err
	}

	c.sampleID = sampleID
	return nil
}

func (c *RegisterResultsCommand) setFields(fields map[string]float64) error {
	if len(fields) == 0 {
		return ErrResultFieldsAreRequired
	}

	c.fields = make(map[string]float64, len(fields))
	for k, v := range fields {
		c.fields[k] = v
	}
	return nil
}
