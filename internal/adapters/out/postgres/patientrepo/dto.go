// Package patientrepo persists patient accounts. One table holds every
// role; staff authenticate through the same register as patients.
package patientrepo

import (
	"time"

	"github.com/google/uuid"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
)

// PatientDTO represents the database structure for persisting accounts.
type PatientDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	DateOfBirth     time.Time
	Email           string `gorm:"uniqueIndex"`
	Role            string `gorm:"index"`
	PasswordHash    string
	Active          bool
}

// TableName overrides GORM's default naming to use "patients".
func (PatientDTO) TableName() string {
	return "patients"
}

func fromDomain(aggregate *patient.Patient) PatientDTO {
	return PatientDTO{
		ID:              aggregate.ID().Bytes(),
		FirstName:       aggregate.FirstName(),
		PaternalSurname: aggregate.PaternalSurname(),
		MaternalSurname: aggregate.MaternalSurname(),
		DateOfBirth:     aggregate.DateOfBirth(),
		Email:           aggregate.Email(),
		Role:            aggregate.Role().String(),
		PasswordHash:    aggregate.PasswordHash(),
		Active:          aggregate.IsActive(),
	}
}

func toDomain(dto PatientDTO) (*patient.Patient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := patient.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return patient.RestorePatient(
		id,
		dto.FirstName,
		dto.PaternalSurname,
		dto.MaternalSurname,
		dto.DateOfBirth,
		dto.Email,
		role,
		dto.PasswordHash,
		dto.Active,
	)
}
