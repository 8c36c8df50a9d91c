package commands

import (
	"errors"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var (
	ErrCreatePatientCommandIsNotConstructed = errors.New(
		"CreatePatientCommand must be created via NewCreatePatientCommand constructor",
	)
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// CreatePatientCommand represents a request to register an account. The
// same table backs every role; staff accounts are created the same way.
type CreatePatientCommand struct { //nolint:recvcheck //using for validation
	caller          services.Caller
	patientID       kernel.UUID
	firstName       string
	paternalSurname string
	maternalSurname string
	dateOfBirth     time.Time
	email           string
	role            patient.Role
	password        string

	guard guard.ConstructorGuard
}

// NewCreatePatientCommand creates a command to register an account.
// The password travels in plaintext only as far as the handler, which
// hashes it before the domain ever sees it.
func NewCreatePatientCommand(
	caller services.Caller,
	patientID kernel.UUID,
	firstName, paternalSurname, maternalSurname string,
	dateOfBirth time.Time,
	email string,
	role patient.Role,
	password string,
) (CreatePatientCommand, error) {
	cmd := CreatePatientCommand{
		firstName:       firstName,
		paternalSurname: paternalSurname,
		maternalSurname: maternalSurname,
		dateOfBirth:     dateOfBirth,
		email:           email,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPatientID(patientID),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return CreatePatientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePatientCommand) Validate() error {
	return c.guard.Validate(ErrCreatePatientCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c CreatePatientCommand) Caller() services.Caller {
	return c.caller
}

// PatientID returns the identifier for the new account.
func (c CreatePatientCommand) PatientID() kernel.UUID {
	return c.patientID
}

// FirstName returns the account holder's first name.
func (c CreatePatientCommand) FirstName() string {
	return c.firstName
}

// PaternalSurname returns the paternal surname.
func (c CreatePatientCommand) PaternalSurname() string {
	return c.paternalSurname
}

// MaternalSurname returns the maternal surname.
func (c CreatePatientCommand) MaternalSurname() string {
	return c.maternalSurname
}

// DateOfBirth returns the account holder's date of birth.
func (c CreatePatientCommand) DateOfBirth() time.Time {
	return c.dateOfBirth
}

// Email returns the login email.
func (c CreatePatientCommand) Email() string {
	return c.email
}

// Role returns the account role.
func (c CreatePatientCommand) Role() patient.Role {
	return c.role
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreatePatientCommand) Password() string {
	return c.password
}

func (c *CreatePatientCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreatePatientCommand) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return err
	}

	c.patientID = patientID
	return nil
}

func (c *CreatePatientCommand) setRole(role patient.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreatePatientCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordIsTooShort)
	}

	c.password = password
	return nil
}

