package samplerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/pkg/errs"
)

// lookupTimeout bounds repository reads so a stalled database surfaces as
// upstream unavailability instead of hanging the caller.
const lookupTimeout = 3 * time.Second

// infra maps a database driver failure to the upstream-unavailable taxonomy.
func infra(err error) error {
	return errs.NewUpstreamUnavailableError("database", err)
}

// GormSampleRepository implements SampleRepository using GORM.
type GormSampleRepository struct {
	db *gorm.DB
}

// NewGormSampleRepository creates a new GORM sample repository.
func NewGormSampleRepository(db *gorm.DB) *GormSampleRepository {
	return &GormSampleRepository{db: db}
}

// Add saves a new sample to the database.
func (r *GormSampleRepository) Add(ctx context.Context, aggregate *sample.Sample) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddBatch saves every sample of one collection event in a single insert.
// Run inside a unit of work so the batch lands atomically.
func (r *GormSampleRepository) AddBatch(ctx context.Context, aggregates []*sample.Sample) error {
	if len(aggregates) == 0 {
		return errs.NewValueIsRequiredError("samples")
	}

	dtos := make([]SampleDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dto, err := fromDomain(aggregate)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Update saves an existing sample with an optimistic concurrency check. The
// write matches the version the aggregate was loaded at and stores
// version+1; a zero-row result against an existing sample means another
// transaction got there first.
func (r *GormSampleRepository) Update(ctx context.Context, aggregate *sample.Sample) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&SampleDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&SampleDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("sample", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("sample", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a sample by ID.
func (r *GormSampleRepository) Get(ctx context.Context, id kernel.UUID) (*sample.Sample, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dto SampleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sample", id.String())
		}
		return nil, infra(err)
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every sample collected against an order, in
// collection order.
func (r *GormSampleRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*sample.Sample, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dtos []SampleDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, infra(err)
	}

	samples := make([]*sample.Sample, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	return samples, nil
}
