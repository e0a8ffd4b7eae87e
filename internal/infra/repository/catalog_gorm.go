package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             s.Name,
			"description":      s.Description,
			"duration_minutes": s.DurationMinutes,
			"active":           s.Active,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("service_not_found")
	}
	return nil
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("service_not_found")
	}
	return nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.Service, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if providerID != nil {
		q = q.Where("provider_id = ?", *providerID)
	}

	var list []models.Service
	total, err := paginate(q, page, "name ASC, id ASC", &list)
	return list, total, err
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
