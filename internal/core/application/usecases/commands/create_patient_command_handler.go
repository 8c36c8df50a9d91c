package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

// CreatePatientCommandHandler handles account registration. The plaintext
// password never leaves this handler; only the bcrypt hash reaches the
// domain and the database.
type CreatePatientCommandHandler struct {
	uowFactory PatientUoWFactory
	policy     services.AccessPolicy
}

// NewCreatePatientCommandHandler creates a handler for registering accounts.
func NewCreatePatientCommandHandler(uowFactory PatientUoWFactory, policy services.AccessPolicy) CreatePatientCommandHandler {
	return CreatePatientCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the registration command.
func (h *CreatePatientCommandHandler) Handle(ctx context.Context, cmd CreatePatientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManagePatients(cmd.Caller()); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	aggregate, err := patient.NewPatient(
		cmd.PatientID(),
		cmd.FirstName(),
		cmd.PaternalSurname(),
		cmd.MaternalSurname(),
		cmd.DateOfBirth(),
		cmd.Email(),
		cmd.Role(),
		string(hash),
	)
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

	_, err = patientRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewValueIsInvalidError("email")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = patientRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
