package queries

import (
	"errors"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrListPatientsQueryIsNotConstructed = errors.New(
	"ListPatientsQuery must be created via NewListPatientsQuery constructor",
)

// ListPatientsQuery lists registered patient accounts for intake screens.
type ListPatientsQuery struct {
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewListPatientsQuery creates a query for the patient register.
func NewListPatientsQuery(caller services.Caller) (ListPatientsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListPatientsQuery{}, err
	}

	return ListPatientsQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPatientsQuery) Validate() error {
	return q.guard.Validate(ErrListPatientsQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q ListPatientsQuery) Caller() services.Caller {
	return q.caller
}

// PatientResponse is one patient register row. Password hashes are never
// projected.
type PatientResponse struct {
	ID              kernel.UUID
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	DateOfBirth     time.Time
	Email           string
	Role            string
	Active          bool
}

// ListPatientsQueryResponse is the patient register.
type ListPatientsQueryResponse struct {
	Patients []PatientResponse
}
