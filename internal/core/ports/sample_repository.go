package ports

import (
	"context"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
)

// SampleRepository defines the persistence contract for sample aggregates.
type SampleRepository interface {
	// Add persists a new sample aggregate to storage.
	Add(ctx context.Context, aggregate *sample.Sample) error

	// AddBatch persists every sample of one collection event inside the
	// current transaction. All samples land or none do.
	AddBatch(ctx context.Context, aggregates []*sample.Sample) error

	// Update persists changes to an existing sample aggregate. The write is
	// version-checked: when the stored version differs from the aggregate's,
	// Update returns a ConcurrentModificationError and persists nothing.
	Update(ctx context.Context, aggregate *sample.Sample) error

	// Get retrieves a sample aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such sample exists.
	Get(ctx context.Context, id kernel.UUID) (*sample.Sample, error)

	// GetAllByOrder retrieves every sample collected against an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*sample.Sample, error)
}
