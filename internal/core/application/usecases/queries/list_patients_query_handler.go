package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
)

// ListPatientsQueryHandler lists the patient register in the surname order
// the intake screens expect.
type ListPatientsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListPatientsQueryHandler creates a handler for the patient register.
func NewListPatientsQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListPatientsQueryHandler {
	return ListPatientsQueryHandler{db: db, policy: policy}
}

// Handle executes the register query.
func (h ListPatientsQueryHandler) Handle(
	ctx context.Context,
	query ListPatientsQuery,
) (ListPatientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPatientsQueryResponse{}, err
	}
	if err := h.policy.CanListPatients(query.Caller()); err != nil {
		return ListPatientsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, paternal_surname, maternal_surname,
			date_of_birth, email, role, active
		FROM patients
		ORDER BY paternal_surname, maternal_surname, first_name
	`).Rows()
	if err != nil {
		return ListPatientsQueryResponse{}, err
	}
	defer rows.Close()

	var resp ListPatientsQueryResponse
	for rows.Next() {
		var (
			id          uuid.UUID
			entry       PatientResponse
			dateOfBirth time.Time
		)
		err = rows.Scan(
			&id,
			&entry.FirstName,
			&entry.PaternalSurname,
			&entry.MaternalSurname,
			&dateOfBirth,
			&entry.Email,
			&entry.Role,
			&entry.Active,
		)
		if err != nil {
			return ListPatientsQueryResponse{}, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListPatientsQueryResponse{}, err
		}
		entry.DateOfBirth = dateOfBirth

		resp.Patients = append(resp.Patients, entry)
	}
	if err = rows.Err(); err != nil {
		return ListPatientsQueryResponse{}, err
	}

	return resp, nil
}
