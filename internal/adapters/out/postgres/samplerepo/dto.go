// Package samplerepo persists sample aggregates. The result payload is a
// JSONB document; a NULL column means results have not been registered.
package samplerepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
)

// SampleDTO represents the database structure for persisting sample
// aggregates. The version column backs optimistic concurrency control.
type SampleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	PatientID          uuid.UUID `gorm:"type:uuid;index"`
	PatientDisplayName string
	Category           string `gorm:"index"`
	Observations       string
	Active             bool
	ClientVisible      bool
	Result             datatypes.JSON
	CreatedAt          time.Time
	Version            int
}

// TableName overrides GORM's default naming to use "samples".
func (SampleDTO) TableName() string {
	return "samples"
}

func fromDomain(aggregate *sample.Sample) (SampleDTO, error) {
	var resultJSON datatypes.JSON
	if payload, ok := aggregate.Result(); ok {
		raw, err := json.Marshal(payload)
		if err != nil {
			return SampleDTO{}, err
		}
		resultJSON = raw
	}

	return SampleDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		PatientID:          aggregate.PatientID().Bytes(),
		PatientDisplayName: aggregate.PatientDisplayName(),
		Category:           aggregate.Category().String(),
		Observations:       aggregate.Observations(),
		Active:             aggregate.IsActive(),
		ClientVisible:      aggregate.IsClientVisible(),
		Result:             resultJSON,
		CreatedAt:          aggregate.CreatedAt(),
		Version:            aggregate.Version(),
	}, nil
}

func toDomain(dto SampleDTO) (*sample.Sample, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	category, err := sample.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	var result *sample.ResultPayload
	if len(dto.Result) > 0 {
		var payload sample.ResultPayload
		if err = json.Unmarshal(dto.Result, &payload); err != nil {
			return nil, err
		}
		result = &payload
	}

	return sample.RestoreSample(
		id,
		orderID,
		patientID,
		dto.PatientDisplayName,
		category,
		dto.Observations,
		dto.Active,
		dto.ClientVisible,
		result,
		dto.CreatedAt,
		dto.Version,
	)
}
