package analysisrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

// lookupTimeout bounds repository reads so a stalled database surfaces as
// upstream unavailability instead of hanging the caller.
const lookupTimeout = 3 * time.Second

// infra maps a database driver failure to the upstream-unavailable taxonomy.
func infra(err error) error {
	return errs.NewUpstreamUnavailableError("database", err)
}

// GormAnalysisRepository implements AnalysisRepository using GORM.
type GormAnalysisRepository struct {
	db *gorm.DB
}

// NewGormAnalysisRepository creates a new GORM analysis repository.
func NewGormAnalysisRepository(db *gorm.DB) *GormAnalysisRepository {
	return &GormAnalysisRepository{db: db}
}

// Add saves a new catalog entry to the database.
func (r *GormAnalysisRepository) Add(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing catalog entry to the database.
func (r *GormAnalysisRepository) Update(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AnalysisDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("analysis", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormAnalysisRepository) Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dto AnalysisDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("analysis", id.String())
		}
		return nil, infra(err)
	}

	return toDomain(dto)
}

// GetAllActive retrieves every orderable catalog entry.
func (r *GormAnalysisRepository) GetAllActive(ctx context.Context) ([]*analysis.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dtos []AnalysisDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, infra(err)
	}

	analyses := make([]*analysis.Analysis, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, nil
}
