package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrEditResultsCommandIsNotConstructed = errors.New(
	"EditResultsCommand must be created via NewEditResultsCommand constructor",
)

// EditResultsCommand represents a correction to previously released
// results. The replacement payload is validated against the same category
// schema; visibility is unaffected.
type EditResultsCommand struct { //nolint:recvcheck //using for validation
	caller   services.Caller
	sampleID kernel.UUID
	fields   map[string]float64

	guard guard.ConstructorGuard
}

// NewEditResultsCommand creates a command to correct a sample's results.
func NewEditResultsCommand(
	caller services.Caller,
	sampleID kernel.UUID,
	fields map[string]float64,
) (EditResultsCommand, error) {
	cmd := EditResultsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSampleID(sampleID),
		cmd.setFields(fields),
	); err != nil {
		return EditResultsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditResultsCommand) Validate() error {
	return c.guard.Validate(ErrEditResultsCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c EditResultsCommand) Caller() services.Caller {
	return c.caller
}

// SampleID returns the sample being corrected.
func (c EditResultsCommand) SampleID() kernel.UUID {
	return c.sampleID
}

// Fields returns the replacement result values keyed by field name.
func (c EditResultsCommand) Fields() map[string]float64 {
	fields := make(map[string]float64, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	return fields
}

func (c *EditResultsCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *EditResultsCommand) setSampleID(sampleID kernel.UUID) error {
	if err := sampleID.Validate(); err != nil {
		return err
	}

	c.sampleID = sampleID
	return nil
}

func (c *EditResultsCommand) setFields(fields map[string]float64) error {
	if len(fields) == 0 {
		return ErrResultFieldsAreRequired
	}

	c.fields = make(map[string]float64, len(fields))
	for k, v := range fields {
		c.fields[k] = v
	}
	return nil
}
