package ports

import (
	"context"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
)

// PatientRepository defines the persistence contract for patient accounts.
// Accounts cover all roles, not only the patient role; staff log in through
// the same table.
type PatientRepository interface {
	// Add persists a new patient account.
	Add(ctx context.Context, aggregate *patient.Patient) error

	// Update persists changes to an existing patient account.
	Update(ctx context.Context, aggregate *patient.Patient) error

	// Get retrieves a patient account by its unique identifier.
	// Returns an ObjectNotFoundError when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error)

	// GetByEmail retrieves a patient account by its login email.
	// Returns an ObjectNotFoundError when no such account exists.
	GetByEmail(ctx context.Context, email string) (*patient.Patient, error)
}
