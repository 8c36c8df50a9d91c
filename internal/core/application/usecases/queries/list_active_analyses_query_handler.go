package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
)

// ListActiveAnalysesQueryHandler reads the active part of the catalog,
// alphabetically.
type ListActiveAnalysesQueryHandler struct {
	db *gorm.DB
}

// NewListActiveAnalysesQueryHandler creates a handler for the catalog list.
func NewListActiveAnalysesQueryHandler(db *gorm.DB) ListActiveAnalysesQueryHandler {
	return ListActiveAnalysesQueryHandler{db: db}
}

// Handle executes the catalog query.
func (h ListActiveAnalysesQueryHandler) Handle(
	ctx context.Context,
	query ListActiveAnalysesQuery,
) (ListActiveAnalysesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListActiveAnalysesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, unit_cost, turnaround_days, description, active
		FROM analyses
		WHERE active = true
		ORDER BY name
	`).Rows()
	if err != nil {
		return ListActiveAnalysesQueryResponse{}, err
	}
	defer rows.Close()

	var resp ListActiveAnalysesQueryResponse
	for rows.Next() {
		var (
			id    uuid.UUID
			entry AnalysisResponse
		)
		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.UnitCost,
			&entry.TurnaroundDays,
			&entry.Description,
			&entry.Active,
		)
		if err != nil {
			return ListActiveAnalysesQueryResponse{}, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListActiveAnalysesQueryResponse{}, err
		}

		resp.Analyses = append(resp.Analyses, entry)
	}
	if err = rows.Err(); err != nil {
		return ListActiveAnalysesQueryResponse{}, err
	}

	return resp, nil
}
