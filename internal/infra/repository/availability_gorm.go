package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AvailabilityGormRepository) CreateBlock(
	ctx context.Context,
	b *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *AvailabilityGormRepository) UpdateBlock(
	ctx context.Context,
	b *models.AvailabilityBlock,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AvailabilityBlock{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"weekday":    b.Weekday,
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("availability_not_found")
	}
	return nil
}

func (r *AvailabilityGormRepository) DeleteBlock(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.AvailabilityBlock{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("availability_not_found")
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetBlock(
	ctx context.Context,
	id uint,
) (*models.AvailabilityBlock, error) {

	var b models.AvailabilityBlock
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, "availability_not_found")
	}
	return &b, nil
}

func (r *AvailabilityGormRepository) ListBlocks(
	ctx context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.AvailabilityBlock, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.AvailabilityBlock{})
	if providerID != nil {
		q = q.Where("provider_id = ?", *providerID)
	}

	var blocks []models.AvailabilityBlock
	total, err := paginate(q, page, "provider_id ASC, id ASC", &blocks)
	return blocks, total, err
}

func (r *AvailabilityGormRepository) ListBlocksForWeekday(
	ctx context.Context,
	providerID uint,
	weekday clock.Weekday,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND weekday = ?", providerID, weekday).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

var _ domain.Repository = (*AvailabilityGormRepository)(nil)
