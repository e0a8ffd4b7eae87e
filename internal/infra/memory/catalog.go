package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type CatalogRepository struct {
	mu   sync.RWMutex
	seq  sequence
	rows map[uint]models.Service
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{rows: map[uint]models.Service{}}
}

func (r *CatalogRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return &s, nil
}

func (r *CatalogRepository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now()
	s.ID = r.seq.next()
	s.CreatedAt = ts
	s.UpdatedAt = ts

	r.rows[s.ID] = *s
	return nil
}

func (r *CatalogRepository) UpdateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[s.ID]
	if !ok {
		return httperr.ErrNotFound("service_not_found")
	}

	cur.Name = s.Name
	cur.Description = s.Description
	cur.DurationMinutes = s.DurationMinutes
	cur.Active = s.Active
	cur.UpdatedAt = now()

	r.rows[s.ID] = cur
	*s = cur
	return nil
}

func (r *CatalogRepository) DeleteService(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return httperr.ErrNotFound("service_not_found")
	}
	delete(r.rows, id)
	return nil
}

func (r *CatalogRepository) ListServices(
	_ context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.Service, int64, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Service{}
	for _, s := range r.rows {
		if providerID == nil || s.ProviderID == *providerID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return pagination.Slice(out, page), int64(len(out)), nil
}

var _ catalog.Repository = (*CatalogRepository)(nil)
