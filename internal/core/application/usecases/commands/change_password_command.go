package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents a credential change. Everyone may change
// their own password; admins may reset any account's.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	caller      services.Caller
	accountID   kernel.UUID
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change an account password.
func NewChangePasswordCommand(caller services.Caller, accountID kernel.UUID, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setAccountID(accountID),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c ChangePasswordCommand) Caller() services.Caller {
	return c.caller
}

// AccountID returns the account whose credential changes.
func (c ChangePasswordCommand) AccountID() kernel.UUID {
	return c.accountID
}

// NewPassword returns the plaintext replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setCaller(caller services.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ChangePasswordCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("newPassword", ErrPasswordIsTooShort)
	}

	c.newPassword = newPassword
	return nil
}

