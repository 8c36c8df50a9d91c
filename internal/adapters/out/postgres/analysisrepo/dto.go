// Package analysisrepo persists the analysis catalog. It maps catalog
// aggregates to their relational representation and back.
package analysisrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/model/kernel"
)

// AnalysisDTO represents the database structure for persisting catalog
// entries.
type AnalysisDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"index"`
	UnitCost       decimal.Decimal `gorm:"type:numeric"`
	TurnaroundDays int
	Description    string
	Active         bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "analyses".
func (AnalysisDTO) TableName() string {
	return "analyses"
}

func fromDomain(aggregate *analysis.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		UnitCost:       aggregate.UnitCost(),
		TurnaroundDays: aggregate.TurnaroundDays(),
		Description:    aggregate.Description(),
		Active:         aggregate.IsActive(),
	}
}

func toDomain(dto AnalysisDTO) (*analysis.Analysis, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return analysis.RestoreAnalysis(id, dto.Name, dto.UnitCost, dto.TurnaroundDays, dto.Description, dto.Active)
}
