// Package ports defines repository interfaces for the laboratory domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/model/kernel"
)

// AnalysisRepository defines the persistence contract for catalog analyses.
type AnalysisRepository interface {
	// Add persists a new analysis to the catalog.
	Add(ctx context.Context, aggregate *analysis.Analysis) error

	// Update persists changes to an existing analysis.
	Update(ctx context.Context, aggregate *analysis.Analysis) error

	// Get retrieves an analysis by its unique identifier.
	// Returns an ObjectNotFoundError when no such analysis exists.
	Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error)

	// GetAllActive retrieves every analysis currently offered by the
	// catalog. Deactivated analyses are excluded; they survive only inside
	// the line-item snapshots of orders placed before deactivation.
	GetAllActive(ctx context.Context) ([]*analysis.Analysis, error)
}
