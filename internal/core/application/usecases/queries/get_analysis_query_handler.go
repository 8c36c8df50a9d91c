package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

// GetAnalysisQueryHandler reads one catalog entry by id.
type GetAnalysisQueryHandler struct {
	db *gorm.DB
}

// NewGetAnalysisQueryHandler creates a handler for single catalog reads.
func NewGetAnalysisQueryHandler(db *gorm.DB) GetAnalysisQueryHandler {
	return GetAnalysisQueryHandler{db: db}
}

// Handle executes the catalog lookup.
func (h GetAnalysisQueryHandler) Handle(
	ctx context.Context,
	query GetAnalysisQuery,
) (AnalysisResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalysisResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, unit_cost, turnaround_days, description, active
		FROM analyses
		WHERE id = ?
	`, query.AnalysisID().String()).Row()

	var (
		id   uuid.UUID
		resp AnalysisResponse
	)
	err := row.Scan(
		&id,
		&resp.Name,
		&resp.UnitCost,
		&resp.TurnaroundDays,
		&resp.Description,
		&resp.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AnalysisResponse{}, errs.NewObjectNotFoundError("analysisId", query.AnalysisID().String())
	}
	if err != nil {
		return AnalysisResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AnalysisResponse{}, err
	}

	return resp, nil
}
