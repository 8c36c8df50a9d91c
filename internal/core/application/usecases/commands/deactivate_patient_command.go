package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrDeactivatePatientCommandIsNotConstructed = errors.New(
	"DeactivatePatientCommand must be created via NewDeactivatePatientCommand constructor",
)

// DeactivatePatientCommand represents a request to deactivate an account.
// Existing orders and samples of the account are untouched.
type DeactivatePatientCommand struct { //nolint:recvcheck //using for validation
	caller    services.Caller
	patientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivatePatientCommand creates a command to deactivate an account.
func NewDeactivatePatientCommand(caller services.Caller, patientID kernel.UUID) (DeactivatePatientCommand, error) {
	cmd := DeactivatePatientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPatientID(patientID),
	); err != nil {
		return DeactivatePatientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivatePatientCommand) Validate() error {
	return c.guard.Validate(ErrDeactivatePatientCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c DeactivatePatientCommand) Caller() services.Caller {
	return c.caller
}

// PatientID returns the account being deactivated.
func (c DeactivatePatientCommand) PatientID() kernel.UUID {
	return c.patientID
}

func (c *DeactivatePatientCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeactivatePatientCommand) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return err
	}

	c.patientID = patientID
	return nil
}

