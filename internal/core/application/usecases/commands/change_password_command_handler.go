package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"labflow/internal/core/domain/services"
)

// ChangePasswordCommandHandler handles credential rotation for an account.
// Admins may rotate any account's password; everyone else only their own.
type ChangePasswordCommandHandler struct {
	uowFactory PatientUoWFactory
	policy     services.AccessPolicy
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(uowFactory PatientUoWFactory, policy services.AccessPolicy) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the password change command.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanChangeCredential(cmd.Caller(), cmd.AccountID()); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	patientRepo := uow.PatientRepository()
	aggregate, err := patientRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePassword(string(hash)); err != nil {
		return err
	}

	if err = patientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
